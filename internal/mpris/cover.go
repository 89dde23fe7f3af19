//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// coverStems and coverExts give the cover file names tried, in priority order.
var (
	coverStems = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".jpeg", ".png"}
)

// findCoverArt returns the cover image next to trackPath, matching names
// case-insensitively, or "" when there is none.
func findCoverArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	byName := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			byName[strings.ToLower(e.Name())] = e.Name()
		}
	}
	for _, stem := range coverStems {
		for _, ext := range coverExts {
			if name, ok := byName[stem+ext]; ok {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}
