package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats linting results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for name ("text" or "json").
func NewFormatter(name string) Formatter {
	if name == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintf(w, "Checking menu %q against %s\n", result.Menu, result.ContentDir); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	for _, issue := range result.Issues {
		loc := issue.Key
		if issue.FilePath != "" {
			loc = fmt.Sprintf("%s (%s)", issue.Key, issue.FilePath)
		}
		if loc == "" {
			loc = result.Menu
		}
		if _, err := fmt.Fprintf(w, "%-7s [%s] %s: %s\n", strings.ToUpper(string(issue.Severity)), issue.Rule, loc, issue.Message); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d entries checked: %d errors, %d warnings\n", result.Checked, result.ErrorCount(), result.WarningCount())
	return err
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// Format outputs results as an indented JSON document.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*Result
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	}{result, result.ErrorCount(), result.WarningCount()})
}
