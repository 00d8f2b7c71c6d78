package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"

	"github.com/relayfetch/arch-packaging/internal/config"
	"github.com/relayfetch/arch-packaging/internal/domain/target"
	"github.com/relayfetch/arch-packaging/internal/logger"
	"github.com/relayfetch/arch-packaging/internal/render"
	"github.com/relayfetch/arch-packaging/internal/srcinfo"
)

const (
	// MetadataFilename is the fixed name of the filled template in every output directory.
	MetadataFilename = "PKGBUILD"

	// sourceTemplate is the template filename for the source package target.
	sourceTemplate = "PKGBUILD.in"

	// binaryTemplate is the template filename for binary package targets.
	binaryTemplate = "PKGBUILD-bin.in"

	// artifactFileMode is used for every generated or copied file.
	artifactFileMode os.FileMode = 0o644

	// outputDirMode is used for created output directories.
	outputDirMode os.FileMode = 0o755
)

// auxFiles is the fixed, target-independent set of static files copied
// verbatim into every output directory.
//
//nolint:gochecknoglobals // Fixed file set shared by all targets.
var auxFiles = []string{
	"relayfetch.install",
	"relayfetch.service",
	"config.toml",
	"files.toml",
}

// generator populates package descriptor directories for a single version.
// It is unexported—callers use RunSource or RunAll, which encapsulate
// setup and validation.
type generator struct {
	// cfg holds the filesystem layout and tool settings.
	cfg *config.Config
	// runner derives the .SRCINFO companion file from a generated PKGBUILD.
	runner srcinfo.Runner
	// version is substituted into the templates.
	version string
}

// run processes the source target and, when requested, every binary target.
// Targets are processed strictly in sequence and the first failure aborts
// the remaining ones.
func (g *generator) run(ctx context.Context, withBinaries bool) error {
	targets := []target.Target{target.Source(g.cfg.SourceDir)}
	if withBinaries {
		targets = append(targets, target.Binaries(g.cfg.BinaryRoot)...)
	}

	for _, tgt := range targets {
		if err := g.populate(ctx, tgt); err != nil {
			return err
		}
	}

	return nil
}

// populate regenerates one output directory from scratch: filled template,
// auxiliary file set, generated .SRCINFO. The directory is removed first so
// no leftovers from a previous run survive, for source and binary targets
// alike.
func (g *generator) populate(ctx context.Context, tgt target.Target) error {
	kvs := []any{
		"kind", string(tgt.Kind),
		"dir", tgt.OutputDir,
	}
	if tgt.Kind == target.KindBinary {
		kvs = append(kvs, "arch", tgt.Arch.Name)
	}

	logger.InfoKV(ctx, "Generating package descriptor", kvs...)

	if err := os.RemoveAll(tgt.OutputDir); err != nil {
		return fmt.Errorf("clean %s: %w", tgt.OutputDir, err)
	}

	if err := os.MkdirAll(tgt.OutputDir, outputDirMode); err != nil {
		return fmt.Errorf("create %s: %w", tgt.OutputDir, err)
	}

	if err := g.writeMetadata(tgt); err != nil {
		return err
	}

	if err := g.copyAuxFiles(tgt.OutputDir); err != nil {
		return err
	}

	return g.writeSrcinfo(ctx, tgt.OutputDir)
}

// writeMetadata renders the target's template and writes it atomically
// under the fixed metadata filename.
func (g *generator) writeMetadata(tgt target.Target) error {
	templateName := sourceTemplate
	values := map[string]string{
		render.TokenVersion: g.version,
	}

	if tgt.Kind == target.KindBinary {
		templateName = binaryTemplate
		values[render.TokenArch] = tgt.Arch.Name
		values[render.TokenRustArch] = tgt.Arch.RustTriple
	}

	contents, err := render.File(filepath.Join(g.cfg.TemplateDir, templateName), values)
	if err != nil {
		return err
	}

	destination := filepath.Join(tgt.OutputDir, MetadataFilename)
	if err = renameio.WriteFile(destination, contents, artifactFileMode); err != nil {
		return fmt.Errorf("write %s: %w", destination, err)
	}

	return nil
}

// copyAuxFiles copies the fixed auxiliary file set into dir. TOML
// configuration files are checked for well-formedness before copying; their
// content is otherwise treated as opaque and copied byte-for-byte.
func (g *generator) copyAuxFiles(dir string) error {
	for _, name := range auxFiles {
		source := filepath.Join(g.cfg.AuxFileDir, name)

		contents, err := os.ReadFile(filepath.Clean(source))
		if err != nil {
			return fmt.Errorf("read auxiliary file: %w", err)
		}

		if strings.HasSuffix(name, ".toml") {
			var parsed map[string]any
			if err = toml.Unmarshal(contents, &parsed); err != nil {
				return fmt.Errorf("malformed %s: %w", name, err)
			}
		}

		destination := filepath.Join(dir, name)
		if err = renameio.WriteFile(destination, contents, artifactFileMode); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
	}

	return nil
}

// writeSrcinfo invokes the metadata-printing step against dir and captures
// its output into the fixed-name info file.
func (g *generator) writeSrcinfo(ctx context.Context, dir string) error {
	stepCtx, cancel := context.WithTimeout(ctx, g.cfg.StepTimeout)
	defer cancel()

	contents, err := g.runner.Print(stepCtx, dir)
	if err != nil {
		return err
	}

	destination := filepath.Join(dir, srcinfo.Filename)
	if err = renameio.WriteFile(destination, contents, artifactFileMode); err != nil {
		return fmt.Errorf("write %s: %w", destination, err)
	}

	return nil
}
