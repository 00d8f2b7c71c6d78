package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds filesystem layout and tool settings shared by the packaging binaries.
type Config struct {
	// TemplateDir is the directory holding the PKGBUILD template files.
	TemplateDir string `yaml:"template_dir"`
	// AuxFileDir is the directory holding the static auxiliary files
	// (install hook, service unit, configuration files).
	AuxFileDir string `yaml:"aux_file_dir"`
	// SourceDir is the output directory for the source package target.
	SourceDir string `yaml:"source_dir"`
	// BinaryRoot is the root directory under which one output directory
	// per architecture is created for binary package targets.
	BinaryRoot string `yaml:"binary_root"`
	// MakepkgPath is the path to the makepkg executable. Empty means
	// resolve "makepkg" from PATH.
	MakepkgPath string `yaml:"makepkg_path"`
	// StepTimeout bounds a single makepkg invocation.
	StepTimeout time.Duration `yaml:"step_timeout"`
}

const (
	// DefaultConfigFilename is the default filename for generator settings.
	DefaultConfigFilename = "relayfetch-packaging.yaml"

	// DefaultTemplateDir holds the PKGBUILD templates shipped with this repository.
	DefaultTemplateDir = "templates"

	// DefaultAuxFileDir holds the static auxiliary files shipped with this repository.
	DefaultAuxFileDir = "files"

	// DefaultSourceDir is where the source package descriptor is generated.
	DefaultSourceDir = "out/relayfetch"

	// DefaultBinaryRoot is where per-architecture binary package descriptors are generated.
	DefaultBinaryRoot = "out/relayfetch-bin"

	// DefaultStepTimeout is the default duration for a single makepkg invocation.
	DefaultStepTimeout = 2 * time.Minute

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeTimeout is returned when the step timeout is negative.
	errNegativeTimeout = errors.New("step timeout must not be negative")
)

// Load reads configuration from the provided path and validates essential fields.
// An absent file at the default location is not an error: defaults are
// returned so the binaries work out of the box from the repository root.
// A path the caller chose explicitly must exist, so a typo in --config is
// not silently mistaken for "no settings".
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultConfigFilename {
			cfg := new(Config)
			if err := Validate(cfg); err != nil {
				return nil, err
			}

			return cfg, nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for unset fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.TemplateDir == "" {
		cfg.TemplateDir = DefaultTemplateDir
	}

	if cfg.AuxFileDir == "" {
		cfg.AuxFileDir = DefaultAuxFileDir
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}

	if cfg.BinaryRoot == "" {
		cfg.BinaryRoot = DefaultBinaryRoot
	}

	if cfg.StepTimeout < 0 {
		return errNegativeTimeout
	}

	if cfg.StepTimeout == 0 {
		cfg.StepTimeout = DefaultStepTimeout
	}

	return nil
}
