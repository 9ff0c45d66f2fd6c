package config

import (
	"fmt"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// Resolve validates the configuration and returns generator options.
// Every failure is an InvalidConfiguration error.
func (c *SiteConfig) Resolve() (pageset.Options, error) {
	cfg := *c
	if err := ApplyDefaults(&cfg); err != nil {
		return pageset.Options{}, err
	}

	if _, err := cfg.Location(); err != nil {
		return pageset.Options{}, err
	}

	langs, err := Languages(cfg.Language)
	if err != nil {
		return pageset.Options{}, err
	}

	perPage := pageset.PerPage{Default: pageset.DefaultPerPage}
	if cfg.PerPage != nil {
		if *cfg.PerPage < 1 {
			return pageset.Options{}, perPageError("per_page", *cfg.PerPage)
		}
		perPage.Default = *cfg.PerPage
	}
	sections := []struct {
		key string
		gen GeneratorConfig
		dst *int
	}{
		{"index_generator.per_page", cfg.IndexGenerator, &perPage.Home},
		{"archive_generator.per_page", cfg.ArchiveGenerator, &perPage.Archive},
		{"category_generator.per_page", cfg.CategoryGenerator, &perPage.Category},
		{"tag_generator.per_page", cfg.TagGenerator, &perPage.Tag},
	}
	for _, s := range sections {
		if s.gen.PerPage == nil {
			continue
		}
		if *s.gen.PerPage < 1 {
			return pageset.Options{}, perPageError(s.key, *s.gen.PerPage)
		}
		*s.dst = *s.gen.PerPage
	}

	opts := pageset.Options{
		PerPage:       perPage,
		PaginationDir: cfg.PaginationDir,
		ArchiveDir:    cfg.ArchiveDir,
		CategoryDir:   cfg.CategoryDir,
		TagDir:        cfg.TagDir,
		Languages:     langs,
	}
	if err := opts.Validate(); err != nil {
		return pageset.Options{}, err
	}
	return opts, nil
}

func perPageError(key string, v int) error {
	return errors.ConfigError("page size must be at least 1").
		WithContext("setting", key).
		WithContext("per_page", v).
		Build()
}

// Languages normalizes the language setting into an ordered list of
// well-formed BCP 47 codes. A scalar becomes a one-element list. Codes keep
// their configured spelling because posts are matched against them exactly.
func Languages(raw any) ([]string, error) {
	var codes []string
	switch v := raw.(type) {
	case nil:
		codes = []string{pageset.DefaultLanguage}
	case string:
		codes = []string{v}
	case []string:
		codes = append(codes, v...)
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.ConfigError("language entries must be strings").
					WithContext("value", fmt.Sprint(item)).
					Build()
			}
			codes = append(codes, s)
		}
	default:
		return nil, errors.ConfigError("language must be a string or a list of strings").
			WithContext("value", fmt.Sprint(v)).
			Build()
	}

	if len(codes) == 0 {
		return nil, errors.ConfigError("at least one language is required").Build()
	}
	for _, code := range codes {
		if _, err := language.Parse(code); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "malformed language code").
				Fatal().
				WithContext("language", code).
				Build()
		}
	}
	return codes, nil
}
