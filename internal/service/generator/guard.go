package generator

import (
	"context"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/relayfetch/arch-packaging/internal/logger"
)

// generatorExecutables are the process names that must not run concurrently:
// two generators interleaving writes in the same output tree would corrupt it.
//
//nolint:gochecknoglobals // Fixed executable name set.
var generatorExecutables = []string{
	"relayfetch-srcpkg",
	"relayfetch-pkggen",
}

// linuxCommLength is the kernel's comm field size: on Linux the process name
// reported via /proc/<pid>/stat is truncated to this many characters, so the
// generator executables show up as "relayfetch-srcp" and "relayfetch-pkgg".
const linuxCommLength = 15

// isGeneratorExecutable reports whether a process name from the process list
// belongs to one of the generator binaries, accounting for the Windows .exe
// suffix and the Linux comm truncation.
func isGeneratorExecutable(name string) bool {
	name = strings.TrimSuffix(name, ".exe")

	for _, executable := range generatorExecutables {
		if name == executable {
			return true
		}

		if len(name) == linuxCommLength && strings.HasPrefix(executable, name) {
			return true
		}
	}

	return false
}

// isGeneratorRunningNow scans the process list for another generator instance.
// Scan failures are logged and treated as "not running" so an unreadable
// process table never blocks generation.
func isGeneratorRunningNow(ctx context.Context) bool {
	processList, err := ps.Processes()
	if err != nil {
		logger.Infof(ctx, "Unable to read process list: %v", err)
		return false
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if isGeneratorExecutable(process.Executable()) {
			logger.InfoKV(ctx, "Found a running generator",
				"pid", process.Pid(),
				"executable", process.Executable())

			return true
		}
	}

	return false
}
