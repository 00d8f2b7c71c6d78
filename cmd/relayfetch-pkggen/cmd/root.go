package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/relayfetch/arch-packaging/internal/config"
	"github.com/relayfetch/arch-packaging/internal/service/generator"
	"github.com/relayfetch/arch-packaging/internal/version"
)

var (
	// configPath to the generator settings YAML file.
	configPath string

	// rootCmd represents the base command for the architecture-aware generator.
	rootCmd = &cobra.Command{
		Use:   "relayfetch-pkggen [version]",
		Short: "Generate source and per-architecture binary package descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &generator.Options{
				ConfigPath: configPath,
				Version:    args[0],
			}

			return generator.RunAll(ctx, options)
		},
	}
)

// Execute runs the relayfetch-pkggen CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
