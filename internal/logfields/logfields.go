package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLanguage   = "language"
	KeyView       = "view"
	KeyPages      = "pages"
	KeyPosts      = "posts"
	KeyGroups     = "groups"
	KeyPath       = "path"
	KeyConfig     = "config"
	KeySource     = "source"
	KeyDurationMS = "duration_ms"
	KeyHash       = "hash"
	KeyError      = "error"
	KeyLanguages  = "languages"
	KeyAdded      = "added"
	KeyRemoved    = "removed"
	KeyOp         = "op"
	KeyForce      = "force"
	KeyAttribute  = "attribute"
	KeyTerm       = "term"
	KeySlug       = "slug"
	KeyCategories = "categories"
	KeyTags       = "tags"
	KeyMergedTerm = "merged_term"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Language(l string) slog.Attr      { return slog.String(KeyLanguage, l) }
func View(v string) slog.Attr          { return slog.String(KeyView, v) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func Posts(n int) slog.Attr            { return slog.Int(KeyPosts, n) }
func Groups(n int) slog.Attr           { return slog.Int(KeyGroups, n) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Config(p string) slog.Attr        { return slog.String(KeyConfig, p) }
func Source(dir string) slog.Attr      { return slog.String(KeySource, dir) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Hash(h string) slog.Attr          { return slog.String(KeyHash, h) }
func Languages(l []string) slog.Attr   { return slog.Any(KeyLanguages, l) }
func Added(n int) slog.Attr            { return slog.Int(KeyAdded, n) }
func Removed(n int) slog.Attr          { return slog.Int(KeyRemoved, n) }
func Op(op string) slog.Attr           { return slog.String(KeyOp, op) }
func Force(f bool) slog.Attr           { return slog.Bool(KeyForce, f) }
func Attribute(name string) slog.Attr  { return slog.String(KeyAttribute, name) }
func Term(name string) slog.Attr       { return slog.String(KeyTerm, name) }
func Slug(s string) slog.Attr          { return slog.String(KeySlug, s) }
func Categories(n int) slog.Attr       { return slog.Int(KeyCategories, n) }
func Tags(n int) slog.Attr             { return slog.Int(KeyTags, n) }
func MergedTerm(name string) slog.Attr { return slog.String(KeyMergedTerm, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
