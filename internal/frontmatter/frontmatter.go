// Package frontmatter splits post sources into a metadata block and a
// Markdown body and decodes the block.
package frontmatter

import (
	"bytes"
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a frontmatter block by its delimiter.
type Format string

const (
	FormatNone Format = ""
	FormatYAML Format = "yaml" // ---
	FormatTOML Format = "toml" // +++
)

var delimiters = []struct {
	marker string
	format Format
}{
	{"---", FormatYAML},
	{"+++", FormatTOML},
}

// ErrMissingClosingDelimiter indicates the document opened a frontmatter
// block but never closed it.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Split separates frontmatter from the Markdown body.
//
// If the document does not start with a known delimiter line, format is
// FormatNone and body is the full input.
func Split(content []byte) (raw []byte, body []byte, format Format, err error) {
	nl := detectNewline(content)

	for _, d := range delimiters {
		open := []byte(d.marker + nl)
		if !bytes.HasPrefix(content, open) {
			continue
		}

		start := len(open)
		closeLine := []byte(d.marker + nl)
		if bytes.HasPrefix(content[start:], closeLine) {
			return []byte{}, content[start+len(closeLine):], d.format, nil
		}

		closeSeq := []byte(nl + d.marker + nl)
		idx := bytes.Index(content[start:], closeSeq)
		if idx < 0 {
			// A closing marker as the very last line without a newline.
			end := len(content) - len(d.marker)
			if end >= start && bytes.HasSuffix(content, []byte(nl+d.marker)) {
				return content[start:end], []byte{}, d.format, nil
			}
			return nil, nil, FormatNone, ErrMissingClosingDelimiter
		}

		end := start + idx + len(nl)
		return content[start:end], content[start+idx+len(closeSeq):], d.format, nil
	}
	return nil, content, FormatNone, nil
}

// Parse decodes a raw frontmatter block (without delimiters) into a map.
func Parse(raw []byte, format Format) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(raw, &fields)
	default:
		err = yaml.Unmarshal(raw, &fields)
	}
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
