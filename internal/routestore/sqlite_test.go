package routestore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/manifest"
	"git.home.luguber.info/inful/langpages/internal/pageset"
	"git.home.luguber.info/inful/langpages/internal/post"
)

func buildManifest(t *testing.T, n int) *manifest.RouteManifest {
	t.Helper()
	opts := pageset.DefaultOptions()
	opts.PerPage.Default = 1
	var posts post.Collection
	for i := range n {
		posts = append(posts, &post.Post{
			ID:   string(rune('a' + i)),
			Lang: "en",
			Date: time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
		})
	}
	ds, err := pageset.Index(posts, opts)
	require.NoError(t, err)
	return manifest.New(ds, opts.Languages, "cfg")
}

func TestSQLiteStore_RecordAndQuery(t *testing.T) {
	ctx := context.Background()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	first := buildManifest(t, 2)
	run1, err := store.Record(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 2, run1.Routes)

	second := buildManifest(t, 3)
	run2, err := store.Record(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, run1.Hash, run2.Hash)

	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, run2.ID, latest.ID)
	assert.Equal(t, "cfg", latest.ConfigHash)

	history, err := store.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, run1.ID, history[1].ID)

	paths, err := store.Paths(ctx, run2.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Paths(), paths)
}

func TestSQLiteStore_UnknownRun(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Paths(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryStorage))
}

func TestSQLiteStore_Persistent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "routes.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	m := buildManifest(t, 1)
	_, err = store.Record(ctx, m)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	latest, err := reopened.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, m.ID, latest.ID)
	assert.WithinDuration(t, m.Timestamp, latest.Timestamp, time.Microsecond)
}

func TestDiff(t *testing.T) {
	added, removed := Diff(
		[]string{"index.html", "page/2/index.html", "tags/x/index.html"},
		[]string{"index.html", "tags/y/index.html", "page/2/index.html"},
	)
	assert.Equal(t, []string{"tags/y/index.html"}, added)
	assert.Equal(t, []string{"tags/x/index.html"}, removed)

	added, removed = Diff(nil, nil)
	assert.Empty(t, added)
	assert.Empty(t, removed)
}
