package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nfvs/weeknote/internal/note"
	"github.com/nfvs/weeknote/internal/week"
)

// NoteInfo describes one weekly note file found on disk
type NoteInfo struct {
	Week       week.Week
	Start      time.Time
	RangeLabel string
	OpenTODOs  int
	BaseName   string
	Path       string
}

// ScanNotes walks baseDir for <year>/<MM-DD>.md note files, newest
// first. Files that do not match the naming scheme are skipped.
func ScanNotes(baseDir string) ([]NoteInfo, error) {
	baseDir = os.ExpandEnv(baseDir)
	years, err := os.ReadDir(baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var notes []NoteInfo
	for _, y := range years {
		if !y.IsDir() {
			continue
		}
		year, err := strconv.Atoi(y.Name())
		if err != nil {
			continue
		}

		files, err := os.ReadDir(filepath.Join(baseDir, y.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
				continue
			}
			start, err := time.ParseInLocation("2006-01-02",
				y.Name()+"-"+strings.TrimSuffix(f.Name(), ".md"), time.Local)
			if err != nil {
				continue
			}

			_, wk := start.ISOWeek()
			w := week.Week{Year: year, Week: wk}
			path := filepath.Join(baseDir, y.Name(), f.Name())

			openTODOs := 0
			if body, ok := note.SectionFromFile(path, "TODO"); ok {
				openTODOs = countItems(body)
			}

			end := start.AddDate(0, 0, week.WorkDays-1)
			notes = append(notes, NoteInfo{
				Week:       w,
				Start:      start,
				RangeLabel: start.Format("2006/01/02") + " - " + end.Format("2006/01/02"),
				OpenTODOs:  openTODOs,
				BaseName:   filepath.Join(y.Name(), f.Name()),
				Path:       path,
			})
		}
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Start.After(notes[j].Start)
	})
	return notes, nil
}

// countItems counts list entries in a section body. Lines that are not
// list items (continuations, notes) are ignored.
func countItems(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			n++
		}
	}
	return n
}
