package ignore

import (
	"path/filepath"
	"strings"
)

// hasPathPrefix reports whether path equals prefix or lies beneath it.
// Matching is per path component: "a" covers "a/b" but not "ab".
func hasPathPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return true
	}
	return path[len(prefix)] == filepath.Separator
}

// isGlob reports whether an exclusion contains doublestar metacharacters.
func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// normalizePattern converts an exclusion glob to the slash form doublestar
// matches against, dropping a leading "./".
func normalizePattern(p string) string {
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}

// relativeTo returns path relative to base, or path itself when no relative
// form exists.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}

// within returns the slash-separated path of target relative to base when
// target lies strictly inside base.
func within(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return normalizePath(rel), true
}
