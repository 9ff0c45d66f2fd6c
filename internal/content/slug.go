package content

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Slugify turns a term name into a single path segment. Accents are
// stripped, letters lowercased and every run of other characters collapsed
// to one hyphen. A name without any letter or digit is spelled out as its
// hex code points ("🚀" becomes "1f680"). Only a blank name yields "".
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = lower.String(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return codePoints(name)
	}
	return b.String()
}

func codePoints(name string) string {
	var parts []string
	for _, r := range name {
		if !unicode.IsSpace(r) {
			parts = append(parts, strconv.FormatInt(int64(r), 16))
		}
	}
	return strings.Join(parts, "-")
}
