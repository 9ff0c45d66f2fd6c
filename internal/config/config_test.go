package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/langpages/internal/pageset"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "_config.yml", "title: blog\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Hash())

	opts, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, pageset.DefaultOptions(), opts)
	assert.Equal(t, DefaultSourceDir, cfg.SourceDir)
}

func TestLoad_ScalarLanguageAndSections(t *testing.T) {
	path := writeConfig(t, "_config.yml", `
per_page: 5
language: fr
archive_dir: /old/
tag_generator:
  per_page: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	opts, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, []string{"fr"}, opts.Languages)
	assert.Equal(t, "old", opts.ArchiveDir)
	assert.Equal(t, 5, opts.PerPage.For(pageset.ViewIndex))
	assert.Equal(t, 2, opts.PerPage.For(pageset.ViewTag))
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "site.toml", `
per_page = 3
language = ["en", "de"]

[archive_generator]
per_page = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	opts, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "de"}, opts.Languages)
	assert.Equal(t, 3, opts.PerPage.Default)
	assert.Equal(t, 7, opts.PerPage.For(pageset.ViewArchive))
}

func TestLoad_ExpandsEnvFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LANGPAGES_TEST_TAGS=labels\n"), 0o600))
	path := filepath.Join(dir, "_config.yml")
	require.NoError(t, os.WriteFile(path, []byte("tag_dir: ${LANGPAGES_TEST_TAGS}\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LANGPAGES_TEST_TAGS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "labels", cfg.TagDir)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, pageset.IsInvalidConfiguration(err))
}

func TestResolve_ExplicitZeroPerPage(t *testing.T) {
	for _, body := range []string{
		"per_page: 0\n",
		"per_page: -1\n",
		"category_generator:\n  per_page: 0\n",
	} {
		cfg, err := Parse([]byte(body), FormatYAML)
		require.NoError(t, err)
		_, err = cfg.Resolve()
		require.Error(t, err, body)
		assert.True(t, pageset.IsInvalidConfiguration(err), body)
	}
}

func TestResolve_BadLanguages(t *testing.T) {
	for _, body := range []string{
		"language: []\n",
		"language: [en, en]\n",
		"language: 42\n",
		"language: [en, 3]\n",
		"language: 'not a language!'\n",
		"language: [en, tags]\n",
	} {
		cfg, err := Parse([]byte(body), FormatYAML)
		require.NoError(t, err)
		_, err = cfg.Resolve()
		require.Error(t, err, body)
		assert.True(t, pageset.IsInvalidConfiguration(err), body)
	}
}

func TestResolve_CollidingDirs(t *testing.T) {
	cfg, err := Parse([]byte("archive_dir: tags\n"), FormatYAML)
	require.NoError(t, err)
	_, err = cfg.Resolve()
	require.Error(t, err)
	assert.True(t, pageset.IsInvalidConfiguration(err))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_config.yml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	opts, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, opts.Languages)
	assert.Equal(t, 20, opts.PerPage.For(pageset.ViewArchive))
}

func TestLogConfig(t *testing.T) {
	assert.Equal(t, "DEBUG", LogConfig{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "INFO", LogConfig{Level: "bogus"}.SlogLevel().String())
	assert.NotNil(t, LogConfig{Format: "json"}.NewLogger(os.Stderr, true))
}

func TestLocation(t *testing.T) {
	cfg, err := Parse([]byte("title: blog\n"), FormatYAML)
	require.NoError(t, err)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg, err = Parse([]byte("timezone: Europe/Paris\n"), FormatYAML)
	require.NoError(t, err)
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())
	_, err = cfg.Resolve()
	require.NoError(t, err)

	cfg, err = Parse([]byte("timezone: Mars/Olympus_Mons\n"), FormatYAML)
	require.NoError(t, err)
	_, err = cfg.Resolve()
	require.Error(t, err)
	assert.True(t, pageset.IsInvalidConfiguration(err))
}
