// Package config loads the site configuration and resolves it into the
// options consumed by page generation.
//
// Keys follow the Hexo `_config.yml` layout so existing blogs can be pointed
// at langpages unchanged. TOML files (selected by a .toml extension) use the
// same key names.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
)

// SiteConfig is the raw site configuration as read from disk.
//
// Page sizes are pointers so an explicit 0 can be told apart from an absent
// key: absent falls back, explicit non-positive values are rejected.
type SiteConfig struct {
	PerPage       *int   `yaml:"per_page,omitempty" toml:"per_page,omitempty"`
	PaginationDir string `yaml:"pagination_dir,omitempty" toml:"pagination_dir,omitempty"`
	ArchiveDir    string `yaml:"archive_dir,omitempty" toml:"archive_dir,omitempty"`
	CategoryDir   string `yaml:"category_dir,omitempty" toml:"category_dir,omitempty"`
	TagDir        string `yaml:"tag_dir,omitempty" toml:"tag_dir,omitempty"`
	// Language is either a single code or an ordered list of codes.
	Language any `yaml:"language,omitempty" toml:"language,omitempty"`

	IndexGenerator    GeneratorConfig `yaml:"index_generator,omitempty" toml:"index_generator,omitempty"`
	ArchiveGenerator  GeneratorConfig `yaml:"archive_generator,omitempty" toml:"archive_generator,omitempty"`
	CategoryGenerator GeneratorConfig `yaml:"category_generator,omitempty" toml:"category_generator,omitempty"`
	TagGenerator      GeneratorConfig `yaml:"tag_generator,omitempty" toml:"tag_generator,omitempty"`

	// Timezone is the IANA zone for post dates written without an offset.
	// Empty means UTC.
	Timezone string `yaml:"timezone,omitempty" toml:"timezone,omitempty"`

	// SourceDir is where the content loader looks for posts.
	SourceDir string    `yaml:"source_dir,omitempty" toml:"source_dir,omitempty"`
	Log       LogConfig `yaml:"log,omitempty" toml:"log,omitempty"`

	hash string
}

// GeneratorConfig holds per-section overrides.
type GeneratorConfig struct {
	PerPage *int `yaml:"per_page,omitempty" toml:"per_page,omitempty"`
}

// Hash returns the SHA-256 of the expanded configuration file, or "" for
// configurations not read from disk.
func (c *SiteConfig) Hash() string { return c.hash }

// Load reads, expands and decodes the configuration at path and applies defaults.
//
// Variables from .env or .env.local are loaded first without overriding the
// process environment, then ${VAR} references in the file are expanded.
func Load(path string) (*SiteConfig, error) {
	loadEnvFile(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read configuration").
			WithContext("path", path).
			Build()
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	cfg, err := Parse(expanded, formatFor(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "decode configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}

	sum := sha256.Sum256(expanded)
	cfg.hash = hex.EncodeToString(sum[:])
	return cfg, nil
}

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes data in the given format and applies defaults.
func Parse(data []byte, format Format) (*SiteConfig, error) {
	var cfg SiteConfig
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}
	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
