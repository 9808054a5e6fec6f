package combine

import (
	"path/filepath"
	"strings"
)

// FilterByExtension keeps the files whose extension is in allow, preserving
// order. Entries in allow may be written with or without a leading dot. An
// empty allow-list returns files unchanged.
func FilterByExtension(files []string, allow []string) []string {
	if len(allow) == 0 {
		return files
	}

	wanted := make(map[string]struct{}, len(allow))
	for _, ext := range allow {
		wanted[strings.TrimPrefix(ext, ".")] = struct{}{}
	}

	filtered := make([]string, 0, len(files))
	for _, f := range files {
		ext, ok := extensionOf(f)
		if !ok {
			continue
		}
		if _, hit := wanted[ext]; hit {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// extensionOf returns the text after the last dot of the base name.
// Names like ".bashrc" or "notes." have no extension.
func extensionOf(path string) (string, bool) {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}
