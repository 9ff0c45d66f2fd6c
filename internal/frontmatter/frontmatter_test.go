package frontmatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, format, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, FormatNone, format)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\nkey: value\n---\n# Title\n")

	fm, body, format, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Equal(t, []byte("key: value\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_TOMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("+++\ntitle = \"x\"\n+++\nbody\n")

	fm, body, format, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, FormatTOML, format)
	require.Equal(t, []byte("title = \"x\"\n"), fm)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, format, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.Error(t, err)
	require.Equal(t, FormatNone, format)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, format, err := Split([]byte("---\nkey: value\n---"))
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Equal(t, []byte("key: value\n"), fm)
	require.Empty(t, body)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\nkey: value\r\n---\r\n# Title\r\n")

	fm, body, _, err := Split(input)
	require.NoError(t, err)
	require.Equal(t, []byte("key: value\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock(t *testing.T) {
	fm, body, format, err := Split([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	require.Equal(t, FormatYAML, format)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestParse_YAML(t *testing.T) {
	fields, err := Parse([]byte("title: Hello\ntags: [a, b]\ndate: 2024-03-05\n"), FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"a", "b"}, fields["tags"])
	require.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), fields["date"])
}

func TestParse_TOML(t *testing.T) {
	fields, err := Parse([]byte("title = \"Hello\"\ntags = [\"a\"]\n"), FormatTOML)
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"a"}, fields["tags"])
}

func TestParse_EmptyAndInvalid(t *testing.T) {
	fields, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	require.Empty(t, fields)

	_, err = Parse([]byte("key: [unclosed\n"), FormatYAML)
	require.Error(t, err)
}
