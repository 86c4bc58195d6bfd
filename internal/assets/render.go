package assets

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHead writes the <link> and <script> tags of the plan, one per line,
// stylesheets first.
func (p *Plan) RenderHead(w io.Writer) error {
	for _, a := range p.Stylesheets {
		if err := renderLine(w, stylesheetNode(a)); err != nil {
			return err
		}
	}
	for _, a := range p.Scripts {
		if err := renderLine(w, scriptNode(a)); err != nil {
			return err
		}
	}
	return nil
}

// PermalinkAnchor writes the anchor link appended to a heading with the given id.
func PermalinkAnchor(w io.Writer, id, icon string) error {
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "class", Val: "headerlink"},
			{Key: "href", Val: "#" + id},
			{Key: "title", Val: "Link to this heading"},
		},
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: icon})
	return html.Render(w, a)
}

func stylesheetNode(a Asset) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "type", Val: "text/css"},
			{Key: "href", Val: a.Href},
		},
	}
}

func scriptNode(a Asset) *html.Node {
	attrs := []html.Attribute{{Key: "src", Val: a.Href}}
	if a.Integrity != "" {
		attrs = append(attrs,
			html.Attribute{Key: "integrity", Val: a.Integrity},
			html.Attribute{Key: "crossorigin", Val: a.CrossOrigin},
		)
	}
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     attrs,
	}
}

func renderLine(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
