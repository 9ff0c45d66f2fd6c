package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// Example returns a starter configuration for a two-language blog.
func Example() *SiteConfig {
	perPage := pageset.DefaultPerPage
	archivePerPage := 20
	return &SiteConfig{
		PerPage:          &perPage,
		PaginationDir:    pageset.DefaultPaginationDir,
		ArchiveDir:       pageset.DefaultArchiveDir,
		CategoryDir:      pageset.DefaultCategoryDir,
		TagDir:           pageset.DefaultTagDir,
		Language:         []string{"en", "fr"},
		ArchiveGenerator: GeneratorConfig{PerPage: &archivePerPage},
		SourceDir:        DefaultSourceDir,
		Log:              LogConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}
}

// Init writes the example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "marshal example configuration").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write configuration").
			WithContext("path", path).
			Build()
	}
	return nil
}
