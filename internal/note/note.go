// Package note reads and writes weekly note documents.
package note

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nfvs/weeknote/internal/week"
)

// Section extracts the body of a top-level markdown section. The
// heading line must be exactly "## <name>"; the body is everything up
// to the next line starting with "##", or the end of content. The
// returned flag distinguishes a missing section from one that is
// present but empty.
func Section(content, name string) (string, bool) {
	lines := strings.Split(content, "\n")
	heading := "## " + name

	start := -1
	for i, line := range lines {
		if line == heading {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "##") {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n")), true
}

// SectionFromFile extracts a section from the note at path. A missing
// or empty file reports not found.
func SectionFromFile(path, name string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return Section(string(data), name)
}

// CarryForward collects the TODO and Blockers bodies from the note of
// the week before now. Either section may be absent independently;
// absence yields an empty string, never an error.
func CarryForward(baseDir string, now time.Time) (todo, blockers string) {
	path, err := week.FilePath(baseDir, "last", now)
	if err != nil {
		return "", ""
	}
	todo, _ = SectionFromFile(path, "TODO")
	blockers, _ = SectionFromFile(path, "Blockers")
	return todo, blockers
}

// Exists reports whether a non-empty note file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

// Create writes a new note file, creating the year directory with
// owner-only permissions. An existing non-empty note is left untouched.
func Create(path, content string) error {
	if Exists(path) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0600)
}

// TightenPerms restricts the note file to owner read/write. Failures
// are deliberately ignored.
func TightenPerms(path string) {
	_ = os.Chmod(path, 0600)
}
