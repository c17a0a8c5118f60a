package domain

// RuleFileScanner locates rule files under the given paths and reads them.
type RuleFileScanner interface {
	// Scan expands files and directories into rule file paths, in walk
	// order, skipping excluded directories.
	Scan(paths []string, excludePaths ...string) ([]string, error)
	// Read returns the raw contents of one rule file.
	Read(path string) ([]byte, error)
}

// RuleCompiler validates a full rule file with an external compiler.
// Compilation failure is advisory: it becomes a single issue and never
// stops structural analysis.
type RuleCompiler interface {
	// Available reports whether a compiler can be invoked at all.
	Available() bool
	// Compile returns nil on success, or the structured failure.
	Compile(path string) *CompileError
}

// CompileError is a structured compilation failure from the external
// compiler.
type CompileError struct {
	Message string
	Line    int
}

// ConfigLoader loads project-level analysis configuration.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// GitInfo provides repository metadata for report stamping.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
