package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID reports whether id is safe to use as a filename component.
// Anything outside [A-Za-z0-9_-] is rejected, which rules out path
// separators, "..", and NUL before any path is ever built.
func ValidateID(id string) bool {
	return idPattern.MatchString(id)
}

// securePath joins dir and name+ext and verifies the result stays
// lexically inside dir. Both checks run on every store access so a
// validator bug in a caller cannot reach outside the record directory.
func securePath(dir, name, ext string) (string, error) {
	if !ValidateID(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, name)
	}
	path := filepath.Join(dir, name+ext)
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if absPath != absDir && !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes %q", ErrInvalidID, name, dir)
	}
	return absPath, nil
}

// SanitizeLabel lowercases a free-form label and collapses anything
// outside [a-z0-9] to underscores, for embedding in generated keys
func SanitizeLabel(label string) string {
	if label == "" {
		label = "unknown"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
