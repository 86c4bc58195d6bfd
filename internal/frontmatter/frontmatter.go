// Package frontmatter separates a YAML front matter block from a Markdown document.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the document started with a YAML
// front matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml front matter start delimiter found but closing delimiter is missing")

// Split separates YAML front matter (`---` delimited) from the Markdown body.
//
// If the document does not start with a front matter delimiter, had is false
// and body is the full input. The closing delimiter may end the file.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)

	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	rest := content[len(open):]

	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}
	if bytes.Equal(rest, []byte(delimiter)) {
		return []byte{}, []byte{}, true, nil
	}

	closing := []byte(nl + delimiter)
	for offset := 0; ; {
		idx := bytes.Index(rest[offset:], closing)
		if idx < 0 {
			return nil, content, false, ErrMissingClosingDelimiter
		}
		end := offset + idx + len(closing)
		switch {
		case end == len(rest):
			return rest[:offset+idx+len(nl)], []byte{}, true, nil
		case bytes.HasPrefix(rest[end:], []byte(nl)):
			return rest[:offset+idx+len(nl)], rest[end+len(nl):], true, nil
		}
		// "---" followed by more text on the same line is not a delimiter.
		offset = end
	}
}

// ParseYAML parses raw YAML front matter (without --- delimiters) into a map.
func ParseYAML(fm []byte) (map[string]any, error) {
	if len(fm) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// detectNewline returns the line ending of the first line.
func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
