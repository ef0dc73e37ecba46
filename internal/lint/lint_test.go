package lint

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/navmenu"
)

func writePage(t *testing.T, dir, rel, content string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestResolvePage(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "openai.mdx", "# OpenAI SDK\n")
	writePage(t, dir, "langchain/index.md", "# Langchain\n")
	writePage(t, dir, "other/_index.md", "")
	writePage(t, dir, "vapi/_index.mdx", "# Vapi\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dify.md"), 0o750))

	p, ok := ResolvePage(dir, "openai")
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "openai.mdx"), p)

	_, ok = ResolvePage(dir, "langchain")
	require.True(t, ok)
	_, ok = ResolvePage(dir, "other")
	require.True(t, ok)
	p, ok = ResolvePage(dir, "vapi")
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "vapi", "_index.mdx"), p)

	_, ok = ResolvePage(dir, "dify")
	require.False(t, ok, "directories are not pages")
	_, ok = ResolvePage(dir, "missing")
	require.False(t, ok)
}

func TestLint_ReportsMissingPages(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "overview.md", "# Overview\n")
	m := navmenu.New("integrations",
		navmenu.Entry{Key: "overview", Label: "Overview"},
		navmenu.Entry{Key: "vapi", Label: "Vapi"},
	)

	res, err := NewLinter(dir, false).Lint(m)
	require.NoError(t, err)
	require.Equal(t, 2, res.Checked)
	require.Len(t, res.Issues, 1)
	require.Equal(t, RulePageExists, res.Issues[0].Rule)
	require.Equal(t, "vapi", res.Issues[0].Key)
	require.True(t, res.HasErrors())
}

func TestLint_TitleMismatch(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "groq-sdk.mdx", "---\ntitle: Groq SDK Integration\n---\n# Groq\n")
	writePage(t, dir, "dify.md", "# dify.ai\n")
	writePage(t, dir, "ollama.md", "---\ntitle: [oops\n---\n")
	writePage(t, dir, "goose.md", "no heading at all\n")
	m := navmenu.New("integrations",
		navmenu.Entry{Key: "groq-sdk", Label: "Groq"},
		navmenu.Entry{Key: "dify", Label: "Dify.AI"},
		navmenu.Entry{Key: "ollama", Label: "Ollama"},
		navmenu.Entry{Key: "goose", Label: "Goose"},
	)

	res, err := NewLinter(dir, false).Lint(m)
	require.NoError(t, err)
	require.False(t, res.HasErrors())
	require.Equal(t, 2, res.WarningCount())
	require.Equal(t, "groq-sdk", res.Issues[0].Key)
	require.Contains(t, res.Issues[0].Message, "Groq SDK Integration")
	require.Equal(t, "ollama", res.Issues[1].Key)

	quiet, err := NewLinter(dir, true).Lint(m)
	require.NoError(t, err)
	require.Empty(t, quiet.Issues)
}

func TestLint_InvalidMenu(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.md", "# A\n")
	m := navmenu.New("x",
		navmenu.Entry{Key: "a", Label: "A"},
		navmenu.Entry{Key: "a", Label: "A again"},
		navmenu.Entry{Key: "b c", Label: "BC"},
	)

	res, err := NewLinter(dir, false).Lint(m)
	require.NoError(t, err)
	var rules []string
	for _, i := range res.Issues {
		rules = append(rules, i.Rule)
	}
	require.Equal(t, []string{RuleMenuValid, RuleMenuValid}, rules)
}

func TestLint_ContentDirErrors(t *testing.T) {
	_, err := NewLinter(filepath.Join(t.TempDir(), "nope"), false).Lint(navmenu.Integrations())
	require.Error(t, err)

	file := writePage(t, t.TempDir(), "file.md", "")
	_, err = NewLinter(file, false).Lint(navmenu.Integrations())
	require.Error(t, err)
}

func TestLint_IntegrationsAgainstCompleteTree(t *testing.T) {
	dir := t.TempDir()
	for key, label := range navmenu.Integrations().All() {
		writePage(t, dir, key+".mdx", "# "+label+"\n")
	}
	res, err := NewLinter(dir, false).Lint(navmenu.Integrations())
	require.NoError(t, err)
	require.Empty(t, res.Issues)
}

func TestFormatters(t *testing.T) {
	res := &Result{
		Menu:       "integrations",
		ContentDir: "pages",
		Checked:    2,
		Issues: []Issue{
			{Rule: RulePageExists, Severity: SeverityError, Key: "vapi", Message: "no page"},
			{Rule: RuleLabelMatches, Severity: SeverityWarning, Key: "dify", FilePath: "pages/dify.md", Message: "differs"},
		},
	}

	var text bytes.Buffer
	require.NoError(t, NewFormatter("text").Format(&text, res))
	require.Contains(t, text.String(), "ERROR   [page-exists] vapi: no page")
	require.Contains(t, text.String(), "WARNING [label-matches-title] dify (pages/dify.md): differs")
	require.Contains(t, text.String(), "2 entries checked: 1 errors, 1 warnings")

	var js bytes.Buffer
	require.NoError(t, NewFormatter("json").Format(&js, res))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	require.Equal(t, "integrations", decoded["menu"])
	require.EqualValues(t, 1, decoded["errors"])
	require.Len(t, decoded["issues"], 2)
}
