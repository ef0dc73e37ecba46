package navmenu

import (
	"errors"
	"strings"
	"unicode/utf8"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

// Validate checks authoring rules: every key is a non-empty URL path segment,
// keys are unique, and labels are non-empty UTF-8. All violations are
// returned, joined.
func (m Menu) Validate() error {
	var errs []error
	seen := make(map[string]int, len(m.entries))
	for i, e := range m.entries {
		if reason := checkKey(e.Key); reason != "" {
			errs = append(errs, derrors.InvalidKey(e.Key, i, reason))
		}
		if first, dup := seen[e.Key]; dup {
			errs = append(errs, derrors.DuplicateKey(e.Key, first, i))
		} else {
			seen[e.Key] = i
		}
		switch {
		case !utf8.ValidString(e.Label):
			errs = append(errs, derrors.ValidationFailed("label", "label is not valid UTF-8").WithContext("key", e.Key))
		case strings.TrimSpace(e.Label) == "":
			errs = append(errs, derrors.ValidationFailed("label", "label is empty").WithContext("key", e.Key))
		}
	}
	return errors.Join(errs...)
}

// ValidKey reports whether key can be used as a menu slug.
func ValidKey(key string) bool {
	return checkKey(key) == ""
}

// checkKey returns a reason when key is not a usable path segment.
// Only RFC 3986 unreserved characters are accepted.
func checkKey(key string) string {
	if key == "" {
		return "key is empty"
	}
	if key == "." || key == ".." {
		return "key is a relative path segment"
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '.', r == '_', r == '~':
		default:
			return "key contains a character not allowed in a path segment: " + string(r)
		}
	}
	return ""
}
