package pageset

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/util/sets"
)

// Defaults used when the host supplies no value.
const (
	DefaultPerPage       = 10
	DefaultPaginationDir = "page"
	DefaultArchiveDir    = "archives"
	DefaultCategoryDir   = "categories"
	DefaultTagDir        = "tags"
	DefaultLanguage      = "en"
)

// PerPage holds page sizes. A zero section value falls back to Default.
type PerPage struct {
	Default  int
	Home     int
	Archive  int
	Category int
	Tag      int
}

// For returns the effective page size of a view.
func (p PerPage) For(v View) int {
	var n int
	switch v {
	case ViewIndex:
		n = p.Home
	case ViewArchive:
		n = p.Archive
	case ViewCategory:
		n = p.Category
	case ViewTag:
		n = p.Tag
	}
	if n == 0 {
		return p.Default
	}
	return n
}

// Options is the resolved configuration consumed by the generator.
type Options struct {
	PerPage       PerPage
	PaginationDir string
	ArchiveDir    string
	CategoryDir   string
	TagDir        string
	// Languages is ordered; the first entry is the default language whose
	// paths carry no language prefix.
	Languages []string
}

// DefaultOptions returns the options of a single-language site with stock directories.
func DefaultOptions() Options {
	return Options{
		PerPage:       PerPage{Default: DefaultPerPage},
		PaginationDir: DefaultPaginationDir,
		ArchiveDir:    DefaultArchiveDir,
		CategoryDir:   DefaultCategoryDir,
		TagDir:        DefaultTagDir,
		Languages:     []string{DefaultLanguage},
	}
}

// DefaultLanguage returns the primary language, or "" when none is configured.
func (o Options) DefaultLanguage() string {
	if len(o.Languages) == 0 {
		return ""
	}
	return o.Languages[0]
}

var numericSegment = regexp.MustCompile(`^[0-9]+$`)

// Validate rejects options that cannot produce a well-formed, collision-free route table.
func (o Options) Validate() error {
	for _, v := range Views {
		if n := o.PerPage.For(v); n < 1 {
			return errors.ConfigError("page size must be at least 1").
				WithContext("view", string(v)).
				WithContext("per_page", n).
				Build()
		}
	}

	dirs := []struct{ key, value string }{
		{"pagination_dir", o.PaginationDir},
		{"archive_dir", o.ArchiveDir},
		{"category_dir", o.CategoryDir},
		{"tag_dir", o.TagDir},
	}
	seenDirs := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if err := validateDir(d.key, d.value); err != nil {
			return err
		}
		for _, other := range seenDirs {
			if nested(d.value, other) {
				return errors.ConfigError("directory names must be distinct and not nested").
					WithContext(d.key, d.value).
					WithContext("conflicts_with", other).
					Build()
			}
		}
		seenDirs = append(seenDirs, d.value)
	}
	if numericSegment.MatchString(o.PaginationDir) {
		return errors.ConfigError("pagination directory must not be numeric").
			WithContext("pagination_dir", o.PaginationDir).
			Build()
	}

	if len(o.Languages) == 0 {
		return errors.ConfigError("at least one language is required").Build()
	}
	seenLangs := sets.New[string]()
	for _, lang := range o.Languages {
		if lang == "" || strings.ContainsAny(lang, "/\\") {
			return errors.ConfigError("invalid language code").
				WithContext("language", lang).
				Build()
		}
		if seenLangs.Has(lang) {
			return errors.ConfigError("language listed more than once").
				WithContext("language", lang).
				Build()
		}
		seenLangs.Add(lang)
		for _, d := range dirs {
			if firstSegment(d.value) == lang {
				return errors.ConfigError("language code collides with a directory name").
					WithContext("language", lang).
					WithContext(d.key, d.value).
					Build()
			}
		}
	}
	return nil
}

func validateDir(key, value string) error {
	if value == "" {
		return errors.ConfigError("directory name is required").
			WithContext("setting", key).
			Build()
	}
	if strings.HasPrefix(value, "/") || strings.HasSuffix(value, "/") || strings.Contains(value, "\\") {
		return errors.ConfigError("directory name must be relative without surrounding slashes").
			WithContext(key, value).
			Build()
	}
	for _, seg := range strings.Split(value, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return errors.ConfigError("directory name contains an empty or relative segment").
				WithContext(key, value).
				Build()
		}
	}
	return nil
}

// nested reports whether a equals b or one is a path prefix of the other.
func nested(a, b string) bool {
	return a == b || strings.HasPrefix(a, b+"/") || strings.HasPrefix(b, a+"/")
}

func firstSegment(dir string) string {
	head, _, _ := strings.Cut(dir, "/")
	return head
}
