// Package lint checks a navigation menu against the content tree it points
// into: every key should resolve to a page, and a page's own title should
// agree with the sidebar label.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/navmenu"
)

// Severity of a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

const (
	RuleMenuValid    = "menu-valid"
	RulePageExists   = "page-exists"
	RuleLabelMatches = "label-matches-title"
)

// Issue is a single finding.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Key      string   `json:"key,omitempty"`
	FilePath string   `json:"file,omitempty"`
	Message  string   `json:"message"`
}

// Result collects the findings for one menu.
type Result struct {
	Menu       string  `json:"menu"`
	ContentDir string  `json:"content_dir"`
	Checked    int     `json:"checked"`
	Issues     []Issue `json:"issues"`
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

// HasErrors reports whether any error-level issue was found.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

func (r *Result) count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

// pageCandidates are tried in order, relative to the content directory.
var pageCandidates = []string{
	"%s.md",
	"%s.mdx",
	"%s/index.md",
	"%s/index.mdx",
	"%s/_index.md",
	"%s/_index.mdx",
}

// Linter checks menus against a content directory.
type Linter struct {
	contentDir string
	quiet      bool
}

// NewLinter creates a linter rooted at contentDir. In quiet mode warnings are dropped.
func NewLinter(contentDir string, quiet bool) *Linter {
	return &Linter{contentDir: contentDir, quiet: quiet}
}

// Lint runs all rules. An error is returned only when the content directory
// itself cannot be used.
func (l *Linter) Lint(m navmenu.Menu) (*Result, error) {
	st, err := os.Stat(l.contentDir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", l.contentDir)
	}

	res := &Result{Menu: m.Name(), ContentDir: l.contentDir, Checked: m.Len(), Issues: []Issue{}}
	for _, err := range flatten(m.Validate()) {
		res.Issues = append(res.Issues, Issue{Rule: RuleMenuValid, Severity: SeverityError, Message: err.Error()})
	}

	seen := make(map[string]bool, m.Len())
	for key, label := range m.All() {
		if !navmenu.ValidKey(key) || seen[key] {
			continue
		}
		seen[key] = true
		page, ok := ResolvePage(l.contentDir, key)
		if !ok {
			res.Issues = append(res.Issues, Issue{
				Rule:     RulePageExists,
				Severity: SeverityError,
				Key:      key,
				Message:  fmt.Sprintf("no page found for %q (tried %s)", key, strings.Join(candidateNames(key), ", ")),
			})
			continue
		}
		if l.quiet {
			continue
		}
		if issue, ok := checkTitle(page, key, label); ok {
			res.Issues = append(res.Issues, issue)
		}
	}
	return res, nil
}

// ResolvePage returns the first existing page file for key under contentDir.
func ResolvePage(contentDir, key string) (string, bool) {
	for _, name := range candidateNames(key) {
		p := filepath.Join(contentDir, filepath.FromSlash(name))
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

func candidateNames(key string) []string {
	names := make([]string, len(pageCandidates))
	for i, c := range pageCandidates {
		names[i] = fmt.Sprintf(c, key)
	}
	return names
}

// checkTitle compares label with the page's frontmatter title, falling back
// to its first level-1 heading.
func checkTitle(page, key, label string) (Issue, bool) {
	// #nosec G304 -- page is resolved inside the configured content directory.
	data, err := os.ReadFile(page)
	if err != nil {
		return Issue{}, false
	}
	title, ok, err := frontmatter.Title(data)
	if err != nil {
		return Issue{
			Rule:     RuleLabelMatches,
			Severity: SeverityWarning,
			Key:      key,
			FilePath: page,
			Message:  fmt.Sprintf("frontmatter unreadable: %v", err),
		}, true
	}
	if !ok {
		_, body, _, _ := frontmatter.Split(data)
		title, ok = markdown.FirstHeading(body)
	}
	if !ok || strings.EqualFold(strings.TrimSpace(title), strings.TrimSpace(label)) {
		return Issue{}, false
	}
	return Issue{
		Rule:     RuleLabelMatches,
		Severity: SeverityWarning,
		Key:      key,
		FilePath: page,
		Message:  fmt.Sprintf("sidebar label %q differs from page title %q", label, title),
	}, true
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
