package harness

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zowe-tools/zedc/internal/report"
)

// archiveExtensions are the extensions VS Code can install from.
var archiveExtensions = map[string]bool{
	"gz":   true,
	"tgz":  true,
	"vsix": true,
}

// IsArchive reports whether path ends in a supported archive extension.
// The match is case-sensitive. A leading dot does not start an extension,
// so a file named ".vsix" has none.
func IsArchive(path string) bool {
	base := filepath.Base(path)
	i := strings.LastIndex(base, ".")
	if i <= 0 {
		return false
	}
	return archiveExtensions[base[i+1:]]
}

// Canonicalize returns the absolute, symlink-free form of path. It fails if
// path does not exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// ResolvePaths canonicalizes each file and keeps those whose canonical path
// is a supported archive. Order and duplicates are preserved; rejected
// entries are reported and skipped.
func (h *Harness) ResolvePaths(files []string) []string {
	report.Step(h.Reporter, report.IconSearch, "Resolving files...")

	var resolved []string
	for _, f := range files {
		p, err := Canonicalize(f)
		if err != nil {
			report.Rejected(h.Reporter, fmt.Sprintf("%s: %v", f, err))
			continue
		}
		if !IsArchive(p) {
			report.Rejected(h.Reporter, fmt.Sprintf("%s: invalid extension", f))
			continue
		}
		report.Accepted(h.Reporter, f)
		resolved = append(resolved, p)
	}
	return resolved
}
