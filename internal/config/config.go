// Package config loads the YAML configuration file of the markup CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-markup/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Engine names accepted by the engine key.
const (
	EngineMarkup     = "markup"
	EngineCommonMark = "commonmark"
)

// AppName names the per-user config directory.
const AppName = "go-markup"

// Limits on free-form values.
const (
	MaxMarkerLength    = 64
	MaxClassLength     = 64
	MaxPathLength      = 4096
	MaxExtensionLength = 16
	MaxExtensions      = 32
	MaxWorkers         = 64
)

// Config holds the CLI configuration. Zero values mean "use the default".
type Config struct {
	Engine   string         `yaml:"engine"`
	Template TemplateConfig `yaml:"template"`
	Inline   InlineConfig   `yaml:"inline"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
	Workers  int            `yaml:"workers"`
}

// TemplateConfig defines the host template.
type TemplateConfig struct {
	Marker string `yaml:"marker"` // insertion marker (default: {{content}})
	Path   string `yaml:"path"`   // used when no template argument is given
}

// InlineConfig defines ![title](path) resolution.
type InlineConfig struct {
	Images        []string `yaml:"images"`        // image extensions, no dot
	Code          []string `yaml:"code"`          // inlined source extensions, no dot
	CodeAreaClass string   `yaml:"codeAreaClass"` // class of rendered code areas
}

// OutputConfig defines post-processing of the rendered fragment.
type OutputConfig struct {
	RebasePaths bool `yaml:"rebasePaths"`
}

// AssetsConfig defines where templates and fixtures are looked up by name.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// Validate checks values and lengths. Called by LoadConfig, and available for
// callers that build a Config by hand.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Engine) {
	case "", EngineMarkup, EngineCommonMark:
	default:
		return fmt.Errorf("%w: engine %q (must be %s or %s)", ErrInvalidValue, c.Engine, EngineMarkup, EngineCommonMark)
	}

	if err := validateFieldLength("template.marker", c.Template.Marker, MaxMarkerLength); err != nil {
		return err
	}
	if c.Template.Marker != "" && strings.TrimSpace(c.Template.Marker) == "" {
		return fmt.Errorf("%w: template.marker cannot be blank", ErrInvalidValue)
	}
	if err := validateFieldLength("template.path", c.Template.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("inline.codeAreaClass", c.Inline.CodeAreaClass, MaxClassLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Inline.CodeAreaClass, `"<>`) {
		return fmt.Errorf("%w: inline.codeAreaClass %q", ErrInvalidValue, c.Inline.CodeAreaClass)
	}
	if err := validateExtensions("inline.images", c.Inline.Images); err != nil {
		return err
	}
	if err := validateExtensions("inline.code", c.Inline.Code); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// EngineName returns the configured engine, lowercased, defaulting to markup.
func (c *Config) EngineName() string {
	if c.Engine == "" {
		return EngineMarkup
	}
	return strings.ToLower(c.Engine)
}

func validateExtensions(field string, exts []string) error {
	if len(exts) > MaxExtensions {
		return fmt.Errorf("%w: %s has %d entries (max %d)", ErrInvalidValue, field, len(exts), MaxExtensions)
	}
	for i, ext := range exts {
		name := fmt.Sprintf("%s[%d]", field, i)
		if err := validateFieldLength(name, ext, MaxExtensionLength); err != nil {
			return err
		}
		trimmed := strings.TrimPrefix(ext, ".")
		if trimmed == "" || strings.ContainsAny(trimmed, `./\ `) {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, name, ext)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration where every value is the default.
func DefaultConfig() *Config {
	return &Config{Engine: EngineMarkup}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths lists the files tried for a config name, in order: the
// current directory, then the user config directory, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
