package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholder tokens recognized in the PKGBUILD templates.
const (
	// TokenVersion is replaced with the package version in both templates.
	TokenVersion = "@VERSION@"
	// TokenArch is replaced with the Arch Linux architecture name in the binary template.
	TokenArch = "@ARCH@"
	// TokenRustArch is replaced with the Rust target triple in the binary template.
	TokenRustArch = "@RUST_ARCH@"
)

// tokenPattern matches any placeholder token, substituted or not.
// Used to reject templates with tokens the caller did not provide values for.
var tokenPattern = regexp.MustCompile(`@[A-Z][A-Z0-9_]*@`)

// Substitute replaces every occurrence of each token with its value.
// Replacement is exact literal matching with no escaping rules.
// An error is returned when a placeholder token remains after substitution,
// so a template never reaches an output directory half-filled.
func Substitute(content []byte, values map[string]string) ([]byte, error) {
	text := string(content)
	for token, value := range values {
		text = strings.ReplaceAll(text, token, value)
	}

	if leftover := tokenPattern.FindString(text); leftover != "" {
		return nil, fmt.Errorf("unresolved placeholder %s", leftover)
	}

	return []byte(text), nil
}

// File reads the template at path and substitutes the provided values.
func File(path string, values map[string]string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	rendered, err := Substitute(content, values)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}

	return rendered, nil
}
