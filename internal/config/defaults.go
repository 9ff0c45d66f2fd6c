package config

import (
	"strings"

	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// DefaultSourceDir is where Hexo keeps posts.
const DefaultSourceDir = "source/_posts"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *SiteConfig) error
	Domain() string
}

// DirectoryDefaultApplier fills in section and pagination directory names.
type DirectoryDefaultApplier struct{}

func (DirectoryDefaultApplier) Domain() string { return "directories" }

func (DirectoryDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	cfg.PaginationDir = dirOrDefault(cfg.PaginationDir, pageset.DefaultPaginationDir)
	cfg.ArchiveDir = dirOrDefault(cfg.ArchiveDir, pageset.DefaultArchiveDir)
	cfg.CategoryDir = dirOrDefault(cfg.CategoryDir, pageset.DefaultCategoryDir)
	cfg.TagDir = dirOrDefault(cfg.TagDir, pageset.DefaultTagDir)
	return nil
}

// dirOrDefault trims surrounding slashes, which Hexo configs often carry.
func dirOrDefault(v, def string) string {
	v = strings.Trim(strings.TrimSpace(v), "/")
	if v == "" {
		return def
	}
	return v
}

// LanguageDefaultApplier defaults the language list to English.
type LanguageDefaultApplier struct{}

func (LanguageDefaultApplier) Domain() string { return "language" }

func (LanguageDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.Language == nil {
		cfg.Language = []string{pageset.DefaultLanguage}
	}
	return nil
}

// HostDefaultApplier fills in settings used only by the CLI host.
type HostDefaultApplier struct{}

func (HostDefaultApplier) Domain() string { return "host" }

func (HostDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = string(LogLevelInfo)
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = string(LogFormatText)
	}
	return nil
}

var appliers = []DefaultApplier{
	DirectoryDefaultApplier{},
	LanguageDefaultApplier{},
	HostDefaultApplier{},
}

// ApplyDefaults runs every domain applier in order. Page sizes are left
// untouched so Resolve can distinguish absent from explicit values.
func ApplyDefaults(cfg *SiteConfig) error {
	for _, a := range appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
