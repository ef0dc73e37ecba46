package navmenu

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

// Format names an output shape understood by a documentation framework.
type Format string

const (
	FormatMeta     Format = "meta"     // _meta.json object, keys in order
	FormatHugo     Format = "hugo"     // Hugo menu config block
	FormatMarkdown Format = "markdown" // bullet list of links
	FormatHTML     Format = "html"     // markdown list rendered to HTML
	FormatText     Format = "text"     // key<TAB>label lines
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatMeta, FormatHugo, FormatMarkdown, FormatHTML, FormatText}
}

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", derrors.UnknownFormat(s)
}

// RenderOptions tune link-bearing formats.
type RenderOptions struct {
	// BaseURL is the route prefix entries live under, e.g. /docs/integrations.
	BaseURL string
	// MenuName overrides the Hugo menu name; defaults to the menu's name.
	MenuName string
}

// URL returns the route of key under BaseURL, with a trailing slash.
func (o RenderOptions) URL(key string) string {
	return strings.TrimRight(o.BaseURL, "/") + "/" + key + "/"
}

// Render writes m to w in the requested format, in declaration order.
func Render(w io.Writer, m Menu, format Format, opts RenderOptions) error {
	var err error
	switch format {
	case FormatMeta:
		err = renderMeta(w, m)
	case FormatHugo:
		err = renderHugo(w, m, opts)
	case FormatMarkdown:
		err = renderMarkdown(w, m, opts)
	case FormatHTML:
		err = renderHTML(w, m, opts)
	case FormatText:
		err = renderText(w, m)
	default:
		return derrors.UnknownFormat(string(format))
	}
	if err != nil {
		return derrors.RenderFailed(string(format), err)
	}
	return nil
}

// renderMeta writes a JSON object by hand since encoding/json sorts map keys.
func renderMeta(w io.Writer, m Menu) error {
	bw := bufio.NewWriter(w)
	if m.Len() == 0 {
		_, _ = bw.WriteString("{}\n")
		return bw.Flush()
	}
	_, _ = bw.WriteString("{\n")
	for i, e := range m.entries {
		k, err := jsonString(e.Key)
		if err != nil {
			return err
		}
		v, err := jsonString(e.Label)
		if err != nil {
			return err
		}
		sep := ","
		if i == len(m.entries)-1 {
			sep = ""
		}
		_, _ = fmt.Fprintf(bw, "  %s: %s%s\n", k, v, sep)
	}
	_, _ = bw.WriteString("}\n")
	return bw.Flush()
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// HugoMenuItem mirrors one entry of a Hugo site's menu configuration.
type HugoMenuItem struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Weight     int    `yaml:"weight"`
}

// HugoMenu converts m to Hugo menu items. Weights step by 10 so editors can
// slot pages in between without renumbering.
func HugoMenu(m Menu, opts RenderOptions) []HugoMenuItem {
	items := make([]HugoMenuItem, 0, m.Len())
	for i, e := range m.entries {
		items = append(items, HugoMenuItem{
			Identifier: e.Key,
			Name:       e.Label,
			URL:        opts.URL(e.Key),
			Weight:     (i + 1) * 10,
		})
	}
	return items
}

func renderHugo(w io.Writer, m Menu, opts RenderOptions) error {
	name := opts.MenuName
	if name == "" {
		name = m.name
	}
	if name == "" {
		name = "main"
	}
	root := map[string]map[string][]HugoMenuItem{
		"menu": {name: HugoMenu(m, opts)},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

// markdownPunct are the characters CommonMark may read as markup in link text.
const markdownPunct = "\\`*_{}[]()#+-.!<>&|~"

// escapeMarkdown backslash-escapes punctuation so a label renders verbatim.
func escapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune(markdownPunct, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func markdownList(m Menu, opts RenderOptions) []byte {
	var buf bytes.Buffer
	for _, e := range m.entries {
		fmt.Fprintf(&buf, "- [%s](%s)\n", escapeMarkdown(e.Label), opts.URL(e.Key))
	}
	return buf.Bytes()
}

func renderMarkdown(w io.Writer, m Menu, opts RenderOptions) error {
	_, err := w.Write(markdownList(m, opts))
	return err
}

func renderHTML(w io.Writer, m Menu, opts RenderOptions) error {
	return goldmark.Convert(markdownList(m, opts), w)
}

func renderText(w io.Writer, m Menu) error {
	bw := bufio.NewWriter(w)
	for _, e := range m.entries {
		_, _ = fmt.Fprintf(bw, "%s\t%s\n", e.Key, e.Label)
	}
	return bw.Flush()
}
