package docs

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/siteconf/internal/frontmatter"
)

// MarkdownTitle returns the text of the first heading of a Markdown document.
// A leading YAML front matter block is skipped; its title field is used when
// the body has no heading.
func MarkdownTitle(source []byte) string {
	fm, body, _, err := frontmatter.Split(source)
	if err != nil {
		body = source
	}
	if title := headingTitle(body); title != "" {
		return title
	}
	fields, err := frontmatter.ParseYAML(fm)
	if err != nil {
		return ""
	}
	title, _ := fields["title"].(string)
	return strings.TrimSpace(title)
}

func headingTitle(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			title = strings.TrimSpace(inlineText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

func inlineText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}

// RSTTitle returns the first section title of a reStructuredText document:
// a text line immediately followed by an adornment line at least as long.
func RSTTitle(source []byte) string {
	lines := strings.Split(strings.ReplaceAll(string(source), "\r\n", "\n"), "\n")
	for i := 0; i+1 < len(lines); i++ {
		candidate := strings.TrimSpace(lines[i])
		if candidate == "" || isAdornment(candidate) {
			continue
		}
		under := strings.TrimRight(lines[i+1], " \t")
		if isAdornment(under) && len(under) >= len([]rune(candidate)) {
			return candidate
		}
	}
	return ""
}

// isAdornment reports whether line is a run of one repeated punctuation character.
func isAdornment(line string) bool {
	if len(line) < 2 {
		return false
	}
	first := rune(line[0])
	if first > unicode.MaxASCII || !unicode.IsPunct(first) && !unicode.IsSymbol(first) {
		return false
	}
	for _, r := range line {
		if r != first {
			return false
		}
	}
	return true
}
