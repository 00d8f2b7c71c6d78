package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/relayfetch/arch-packaging/internal/config"
	"github.com/relayfetch/arch-packaging/internal/logger"
	"github.com/relayfetch/arch-packaging/internal/srcinfo"
)

// Options contains inputs for the generator entry points.
type Options struct {
	// ConfigPath is an optional path to the generator settings
	// (defaults to relayfetch-packaging.yaml, missing file means defaults).
	ConfigPath string
	// Version is the package version substituted into the templates.
	Version string
}

var (
	// errVersionRequired is returned when the version argument is missing or blank.
	errVersionRequired = errors.New("package version must be provided")
	// errGeneratorRunning indicates another generator process is active.
	errGeneratorRunning = errors.New("another generator is running now")
)

// RunSource generates only the source package descriptor directory.
func RunSource(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "relayfetch-srcpkg")

	return run(ctx, opts, false)
}

// RunAll generates the source package descriptor plus one binary package
// descriptor per supported architecture, then logs the resulting tree.
func RunAll(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "relayfetch-pkggen")

	return run(ctx, opts, true)
}

// run executes the generation workflow shared by both entry points.
func run(ctx context.Context, opts *Options, withBinaries bool) error {
	if strings.TrimSpace(opts.Version) == "" {
		return errVersionRequired
	}

	if isGeneratorRunningNow(ctx) {
		return errGeneratorRunning
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	runner, err := srcinfo.NewMakepkg(cfg.MakepkgPath)
	if err != nil {
		return err
	}

	gen := &generator{
		cfg:     cfg,
		runner:  runner,
		version: opts.Version,
	}

	if err = gen.run(ctx, withBinaries); err != nil {
		return fmt.Errorf("generator failed: %w", err)
	}

	if withBinaries {
		gen.printTree(ctx)
	}

	logger.InfoKV(ctx, "Package descriptors generated successfully", "version", opts.Version)

	return nil
}
