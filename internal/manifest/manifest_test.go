package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/langpages/internal/pageset"
	"git.home.luguber.info/inful/langpages/internal/post"
)

func sampleTable(t *testing.T) []pageset.Descriptor {
	t.Helper()
	opts := pageset.DefaultOptions()
	opts.PerPage.Default = 1
	posts := post.Collection{
		{ID: "a", Lang: "en", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Lang: "en", Date: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)},
	}
	ds, err := pageset.Index(posts, opts)
	require.NoError(t, err)
	return ds
}

func TestNew(t *testing.T) {
	m := New(sampleTable(t), []string{"en"}, "cfg")

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "cfg", m.ConfigHash)
	assert.Equal(t, map[string]int{"index": 2}, m.Counts)
	assert.Equal(t, []string{"index.html", "page/2/index.html"}, m.Paths())
	assert.Equal(t, []string{"b"}, m.Routes[0].PostIDs)
}

func TestManifestSerialization(t *testing.T) {
	m := New(sampleTable(t), []string{"en"}, "cfg")

	data, err := m.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_url": "page/2/"`)
	assert.Contains(t, string(data), `"posts": [`)

	restored, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, m.ID, restored.ID)
	assert.Equal(t, m.Paths(), restored.Paths())
	assert.Equal(t, m.Routes[1].PostIDs, restored.Routes[1].PostIDs)

	_, err = FromJSON([]byte("{"))
	require.Error(t, err)
}

func TestManifestHash_IgnoresRunIdentity(t *testing.T) {
	a := New(sampleTable(t), []string{"en"}, "cfg")
	b := New(sampleTable(t), []string{"en"}, "other")
	require.NotEqual(t, a.ID, b.ID)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64)

	b.Routes = b.Routes[:1]
	hc, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)
}
