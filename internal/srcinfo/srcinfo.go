package srcinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Filename is the fixed name of the generated companion metadata file.
const Filename = ".SRCINFO"

// defaultTool is resolved from PATH when no explicit path is configured.
const defaultTool = "makepkg"

// Runner produces .SRCINFO content for the package descriptor in dir.
// The generator depends on this interface so tests can substitute a fake.
type Runner interface {
	Print(ctx context.Context, dir string) ([]byte, error)
}

// Makepkg runs the real makepkg tool to derive .SRCINFO from a PKGBUILD.
type Makepkg struct {
	// path is the resolved makepkg executable path.
	path string
}

// NewMakepkg resolves the makepkg executable. An empty path means lookup
// of "makepkg" from PATH.
func NewMakepkg(path string) (*Makepkg, error) {
	if path == "" {
		resolved, err := exec.LookPath(defaultTool)
		if err != nil {
			return nil, fmt.Errorf("makepkg not found: %w", err)
		}

		path = resolved
	}

	return &Makepkg{path: path}, nil
}

// Print executes makepkg --printsrcinfo in dir and returns its stdout.
// The tool reads the PKGBUILD in dir; its exit code propagates via err.
func (m *Makepkg) Print(ctx context.Context, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, m.path, "--printsrcinfo")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return nil, fmt.Errorf("makepkg --printsrcinfo: %w: %s", err, strings.TrimSpace(stderr.String()))
		}

		return nil, fmt.Errorf("makepkg --printsrcinfo: %w", err)
	}

	return output, nil
}
