package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"dist":         true,
	"bin":          true,
}

var ruleExtensions = map[string]bool{
	".yar":  true,
	".yara": true,
}

// FileScanner implements domain.RuleFileScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan expands files and directories into rule file paths in walk order.
// Files named explicitly are always included regardless of extension;
// directory walks pick up .yar and .yara files only.
func (s *FileScanner) Scan(paths []string, excludePaths ...string) ([]string, error) {
	exclude := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		exclude[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] || exclude[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if ruleExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Read returns the raw contents of one rule file.
func (s *FileScanner) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}
