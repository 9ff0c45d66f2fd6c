package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/langpages/internal/post"
)

// Frontmatter keys read by the loader.
const (
	keyTitle      = "title"
	keyDate       = "date"
	keyLang       = "lang"
	keyCategories = "categories"
	keyTags       = "tags"
	keyUID        = "uid"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// dateField decodes the date attribute. A missing value returns the zero
// time; a present but unparsable value is an error.
//
// yaml.v3 resolves unquoted timestamps to UTC on its own, so text carries the
// scalar as written and offset-less values are re-read in loc. TOML keeps
// local dates distinct and needs no such help.
func dateField(raw any, text string, loc *time.Location) (time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		if t, ok := parseDate(text, loc); ok {
			return t, nil
		}
		return v, nil
	case toml.LocalDate:
		return v.AsTime(loc), nil
	case toml.LocalDateTime:
		return v.AsTime(loc), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, nil
		}
		if t, ok := parseDate(s, loc); ok {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %v", v)
	}
}

// parseDate tries every known layout. Values with an explicit offset keep it.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// yamlScalar returns the source text of a top-level scalar in a YAML block,
// or "" when the key is absent or not a scalar.
func yamlScalar(raw []byte, key string) string {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &nodes); err != nil {
		return ""
	}
	n, ok := nodes[key]
	if !ok || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

func stringField(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// termsField reads a scalar or list of names, flattening nested lists, and
// returns terms deduplicated by slug in first-seen order.
func termsField(fields map[string]any, key string) []post.Term {
	var names []string
	var collect func(v any)
	collect = func(v any) {
		switch vv := v.(type) {
		case nil:
		case []any:
			for _, item := range vv {
				collect(item)
			}
		case []string:
			names = append(names, vv...)
		default:
			names = append(names, fmt.Sprint(vv))
		}
	}
	collect(fields[key])

	var terms []post.Term
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		slug := Slugify(name)
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		terms = append(terms, post.Term{Name: name, Slug: slug})
	}
	return terms
}
