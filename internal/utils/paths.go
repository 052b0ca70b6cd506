package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome zamienia początkowe "~" na katalog domowy
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
