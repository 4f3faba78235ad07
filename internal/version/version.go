// Package version reads the release string shipped next to the binary.
package version

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// File is the name of the version file.
const File = "version.txt"

// Read returns the trimmed contents of the first version.txt found in dirs,
// or "" when none can be read.
func Read(dirs ...string) string {
	for _, dir := range dirs {
		data, err := os.ReadFile(filepath.Join(dir, File))
		if err != nil {
			slog.Debug("no version file", "dir", dir, "error", err)
			continue
		}
		return strings.TrimSpace(string(data))
	}
	return ""
}

// Dir is the directory of the running executable, or "." if unknown.
func Dir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Find looks next to the executable first, then in the working directory,
// which is where `go run` builds find it.
func Find() string {
	return Read(Dir(), ".")
}
