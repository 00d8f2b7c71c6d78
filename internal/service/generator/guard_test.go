package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestIsGeneratorExecutable covers the exact names, the Windows .exe suffix,
// and the 15-character process names the Linux kernel reports for the
// generator binaries.
func TestIsGeneratorExecutable(t *testing.T) {
	t.Parallel()

	matching := []string{
		"relayfetch-srcpkg",
		"relayfetch-pkggen",
		"relayfetch-srcpkg.exe",
		"relayfetch-pkggen.exe",
		// Truncated comm forms as read from /proc/<pid>/stat.
		"relayfetch-srcp",
		"relayfetch-pkgg",
	}
	for _, name := range matching {
		require.True(t, isGeneratorExecutable(name), name)
	}

	other := []string{
		"",
		"bash",
		"relayfetch",
		"relayfetch-srcpkg2",
		// Other prefix lengths must not match: only the kernel's
		// fixed-size truncation is recognized.
		"relayfetch-src",
		"relayfetch-pkgge",
	}
	for _, name := range other {
		require.False(t, isGeneratorExecutable(name), name)
	}
}

// TestIsGeneratorRunningNow_SelfIsIgnored ensures the guard never trips on
// the calling process itself.
func TestIsGeneratorRunningNow_SelfIsIgnored(t *testing.T) {
	t.Parallel()

	// The test binary is not named like a generator, so with self excluded
	// the scan of a normal test environment reports no running generator.
	require.False(t, isGeneratorRunningNow(context.Background()))
}
