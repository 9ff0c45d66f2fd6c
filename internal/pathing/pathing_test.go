package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		root     string
		segments []string
		want     string
	}{
		{"default language index", "", "", nil, ""},
		{"translated index", "fr/", "", nil, "fr/"},
		{"archive root", "", "archives", nil, "archives/"},
		{"translated month archive", "fr/", "archives", []string{Year(2024), Month(3)}, "fr/archives/2024/03/"},
		{"category", "", "categories", []string{"go"}, "categories/go/"},
		{"tag in german", "de/", "tags", []string{"web-dev"}, "de/tags/web-dev/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.prefix, tt.root, tt.segments...))
		})
	}
}

func TestPathAndLink(t *testing.T) {
	assert.Equal(t, "index.html", Path("", "page", 1))
	assert.Equal(t, "", Link("", "page", 1))
	assert.Equal(t, "page/2/index.html", Path("", "page", 2))
	assert.Equal(t, "page/2/", Link("", "page", 2))
	assert.Equal(t, "fr/archives/2023/index.html", Path("fr/archives/2023/", "page", 1))
	assert.Equal(t, "tags/go/p/12/", Link("tags/go/", "p", 12))
}

func TestNeighbourLink_SecondPageLinksBackToBase(t *testing.T) {
	base := "categories/go/"
	assert.Equal(t, "categories/go/", NeighbourLink(base, "page", 1))
	assert.Equal(t, "", NeighbourLink(base, "page", 0))
	assert.Equal(t, "categories/go/page/3/", NeighbourLink(base, "page", 3))
}

func TestLanguagePrefixAndMonth(t *testing.T) {
	assert.Equal(t, "", LanguagePrefix("en", "en"))
	assert.Equal(t, "fr/", LanguagePrefix("fr", "en"))
	assert.Equal(t, "03", Month(3))
	assert.Equal(t, "12", Month(12))
}
