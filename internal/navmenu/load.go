package navmenu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

// Load reads a YAML menu source from path. The menu name defaults to the
// file's base name without extension when name is empty.
func Load(name, path string) (Menu, error) {
	// #nosec G304 -- path is the configured menu source.
	data, err := os.ReadFile(path)
	if err != nil {
		return Menu{}, derrors.FileSystemError("read", path, err)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	m, err := Parse(name, data)
	if err != nil {
		var ne *derrors.NavError
		if errors.As(err, &ne) {
			if p, _ := ne.Context["path"].(string); p == "" {
				ne.WithContext("path", path)
			}
		}
		return Menu{}, err
	}
	return m, nil
}

// Parse decodes a YAML mapping of slug to label, keeping document order:
//
//	overview: Overview
//	openai: OpenAI SDK
//	llama-index: LlamaIndex
//
// The result is validated before it is returned.
func Parse(name string, data []byte) (Menu, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Menu{}, derrors.MalformedSource("", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Menu{}, derrors.ValidationFailed("menu", "menu source is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Menu{}, derrors.ValidationFailed("menu", "menu source must be a mapping of key to label").
			WithContext("line", root.Line)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return Menu{}, derrors.ValidationFailed("key", "menu key must be a scalar").WithContext("line", k.Line)
		}
		if v.Kind == yaml.AliasNode && v.Alias != nil {
			v = v.Alias
		}
		if v.Kind != yaml.ScalarNode {
			return Menu{}, derrors.ValidationFailed("label", "nested menus are not supported").
				WithContext("key", k.Value).
				WithContext("line", v.Line)
		}
		if first, dup := seen[k.Value]; dup {
			return Menu{}, derrors.DuplicateKey(k.Value, first, len(entries)).WithContext("line", k.Line)
		}
		seen[k.Value] = len(entries)
		label := v.Value
		if v.ShortTag() == "!!null" {
			label = ""
		}
		entries = append(entries, Entry{Key: k.Value, Label: norm.NFC.String(label)})
	}

	m := Menu{name: name, entries: entries}
	if err := m.Validate(); err != nil {
		return Menu{}, fmt.Errorf("menu %q: %w", name, err)
	}
	return m, nil
}
