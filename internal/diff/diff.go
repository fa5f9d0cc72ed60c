// Package diff renders unified diffs between weekly notes.
package diff

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified computes a unified diff between two note contents.
func Unified(oldName, newName, old, new string) string {
	edits := myers.ComputeEdits(span.URIFromPath(oldName), old, new)
	return fmt.Sprint(gotextdiff.ToUnified(oldName, newName, old, edits))
}

// Render wraps a unified diff in a markdown code fence and renders it
// for the terminal. Falls back to the plain diff if rendering fails.
func Render(unified string) string {
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diffMarkdown
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return diffMarkdown
	}
	return rendered
}

// Notes diffs the note at oldPath against the note at newPath. A
// missing file on either side diffs as empty content, so a brand-new
// week shows up as all additions.
func Notes(oldPath, newPath string) (string, error) {
	old, err := readNote(oldPath)
	if err != nil {
		return "", err
	}
	new, err := readNote(newPath)
	if err != nil {
		return "", err
	}

	unified := Unified(filepath.Base(oldPath), filepath.Base(newPath), old, new)
	if unified == "" {
		return "", nil
	}
	return Render(unified), nil
}

func readNote(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return string(data), nil
}
