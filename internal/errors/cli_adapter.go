package errors

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	ne, ok := As(err)
	if !ok {
		return 1
	}

	switch ne.Category {
	case CategoryValidation:
		return 2 // Invalid menu or usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryRender, CategoryFileSystem:
		return 11 // Output error
	case CategoryWatch:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	ne, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return ne.Error()
	}

	msg := fmt.Sprintf("Error: %s", ne.Message)
	if len(ne.Context) == 0 {
		return msg
	}
	keys := make([]string, 0, len(ne.Context))
	for k := range ne.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ne.Context[k]))
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

// HandleError logs the error and returns the exit code to use.
func (a *CLIErrorAdapter) HandleError(err error) int {
	if err == nil {
		return 0
	}
	a.logger.Error(a.FormatError(err), "category", string(GetCategory(err)))
	return a.ExitCodeFor(err)
}
