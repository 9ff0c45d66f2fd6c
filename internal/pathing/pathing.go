// Package pathing composes output paths and links for paginated page groups.
//
// A group base is either empty (the default language's home index) or a
// slash-terminated relative directory such as "fr/archives/2024/03/". Page 1
// of a group always lives directly under the base; later pages live under
// "<base><paginationDir>/<n>/".
package pathing

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexFile is the file name every page is written to.
const IndexFile = "index.html"

// LanguagePrefix returns "" for the default language and "<lang>/" otherwise.
func LanguagePrefix(lang, defaultLang string) string {
	if lang == defaultLang {
		return ""
	}
	return lang + "/"
}

// Compose builds a group base from a language prefix, an optional section
// root and optional dimension segments. Empty root and segments are skipped.
func Compose(langPrefix, root string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	if root != "" {
		parts = append(parts, root)
	}
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return langPrefix
	}
	return langPrefix + strings.Join(parts, "/") + "/"
}

// Year renders a year segment.
func Year(y int) string { return strconv.Itoa(y) }

// Month renders a month segment, always two digits.
func Month(m int) string { return fmt.Sprintf("%02d", m) }

// Link returns the URL prefix of page n in the group rooted at base.
func Link(base, paginationDir string, n int) string {
	if n <= 1 {
		return base
	}
	return base + paginationDir + "/" + strconv.Itoa(n) + "/"
}

// Path returns the output file path of page n in the group rooted at base.
func Path(base, paginationDir string, n int) string {
	return Link(base, paginationDir, n) + IndexFile
}

// NeighbourLink returns the link for a neighbouring page ordinal, or "" when
// the ordinal is the 0 sentinel.
func NeighbourLink(base, paginationDir string, n int) string {
	if n == 0 {
		return ""
	}
	return Link(base, paginationDir, n)
}
