package native

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Candidates returns the file names raylib's shared library is installed
// under on goos, most specific first.
func Candidates(goos string) []string {
	switch goos {
	case "windows":
		return []string{"raylib.dll", "libraylib.dll"}
	case "darwin":
		return []string{"libraylib.dylib", "libraylib.550.dylib", "libraylib.5.5.0.dylib"}
	default:
		return []string{"libraylib.so", "libraylib.so.550", "libraylib.so.5.5.0"}
	}
}

// Search returns the first candidate for goos that exists as a regular file
// in one of dirs.
func Search(dirs []string, goos string) (string, error) {
	for _, dir := range dirs {
		for _, name := range Candidates(goos) {
			path := filepath.Join(dir, name)
			slog.Debug("probing native library", "path", path)

			fi, err := os.Stat(path)
			if err != nil || fi.IsDir() {
				continue
			}

			return path, nil
		}
	}

	return "", fmt.Errorf("searched %d directories: %w", len(dirs), ErrNotFound)
}
