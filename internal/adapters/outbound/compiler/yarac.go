package compiler

import (
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/yaraqc/yaraqc/internal/domain"
)

// yarac reports failures as "file(line): error: message".
var yaracErrorRe = regexp.MustCompile(`\((\d+)\): error: (.+)`)

// YaracCompiler implements domain.RuleCompiler by invoking the yarac
// binary when it is installed. Without yarac the compile check is simply
// skipped; structural analysis never depends on it.
type YaracCompiler struct {
	bin string
}

func New() *YaracCompiler {
	bin, err := exec.LookPath("yarac")
	if err != nil {
		return &YaracCompiler{}
	}
	return &YaracCompiler{bin: bin}
}

func (c *YaracCompiler) Available() bool {
	return c.bin != ""
}

// Compile runs yarac against the file, discarding the compiled output.
// Returns nil on success, or the first reported error.
func (c *YaracCompiler) Compile(path string) *domain.CompileError {
	if c.bin == "" {
		return nil
	}

	cmd := exec.Command(c.bin, path, os.DevNull)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	for _, line := range strings.Split(string(out), "\n") {
		if m := yaracErrorRe.FindStringSubmatch(line); m != nil {
			n, _ := strconv.Atoi(m[1])
			return &domain.CompileError{Message: m[2], Line: n}
		}
	}

	msg := strings.TrimSpace(string(out))
	if msg == "" {
		msg = err.Error()
	}
	return &domain.CompileError{Message: msg}
}
