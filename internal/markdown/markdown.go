package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the plain text of the first level-1 heading in a
// Markdown body (frontmatter already removed).
func FirstHeading(body []byte) (string, bool) {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var heading string
	var found bool
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		heading = strings.TrimSpace(plainText(h, body))
		found = heading != ""
		return gmast.WalkStop, nil
	})
	return heading, found
}

// plainText concatenates text segments under n, dropping inline markup.
func plainText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}
