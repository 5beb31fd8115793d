package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner starts a program and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) error
}

// ExecRunner runs commands directly, wiring their output to Stdout and
// Stderr. A non-zero exit is reported with its status.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdin = os.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s: exit %d: %w", filepath.Base(cmd), exitErr.ExitCode(), err)
		}
		return fmt.Errorf("%s: %w", filepath.Base(cmd), err)
	}
	return nil
}

// ResolveProgram finds name next to the running binary in dir before
// falling back to PATH. Names containing a path separator are used as is.
func ResolveProgram(name, dir string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	if dir != "" {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() && st.Mode()&0o111 != 0 {
			return p, nil
		}
	}
	return exec.LookPath(name)
}
