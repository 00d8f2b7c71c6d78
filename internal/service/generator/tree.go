package generator

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/relayfetch/arch-packaging/internal/logger"
)

// printTree logs the generated directory layout so the operator can see at a
// glance what a run produced.
func (g *generator) printTree(ctx context.Context) {
	var builder strings.Builder

	builder.WriteString("Generated package descriptors:")

	for _, root := range []string{g.cfg.SourceDir, g.cfg.BinaryRoot} {
		if err := appendTree(&builder, root); err != nil {
			logger.Infof(ctx, "Unable to render tree of %s: %v", root, err)
			return
		}
	}

	logger.Info(ctx, builder.String())
}

// appendTree walks root and appends an indented listing to the builder.
// Entries appear in lexical order, two spaces of indent per level.
func appendTree(builder *strings.Builder, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relative, err := filepath.Rel(filepath.Dir(root), path)
		if err != nil {
			return err
		}

		depth := strings.Count(relative, string(filepath.Separator))

		builder.WriteString("\n")
		builder.WriteString(strings.Repeat("  ", depth))
		builder.WriteString(entry.Name())

		if entry.IsDir() {
			builder.WriteString("/")
		}

		return nil
	})
}
