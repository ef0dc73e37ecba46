package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyMenu       = "menu"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeySource     = "source"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Menu(name string) slog.Attr      { return slog.String(KeyMenu, name) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
