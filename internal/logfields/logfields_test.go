package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Menu", KeyMenu, "integrations", Menu("integrations")},
		{"Format", KeyFormat, "meta", Format("meta")},
		{"Path", KeyPath, "/tmp/_meta.json", Path("/tmp/_meta.json")},
		{"Source", KeySource, "builtin", Source("builtin")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
		{"NilError", KeyError, "", Error(nil)},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s key mismatch: got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s value mismatch: got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := DurationMS(1.5).Value.Float64(); got != 1.5 {
		t.Fatalf("DurationMS value = %v", got)
	}
}
