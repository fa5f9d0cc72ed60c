package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nfvs/weeknote/internal/config"
	"github.com/nfvs/weeknote/internal/diff"
	"github.com/nfvs/weeknote/internal/editor"
	"github.com/nfvs/weeknote/internal/logger"
	"github.com/nfvs/weeknote/internal/note"
	"github.com/nfvs/weeknote/internal/styles"
	"github.com/nfvs/weeknote/internal/tui"
	"github.com/nfvs/weeknote/internal/week"
)

const version = "0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list", "ls":
			handleList(os.Args[2:])
			return
		case "diff":
			handleDiff(os.Args[2:])
			return
		case "version", "-v", "--version":
			fmt.Printf("weeknote v%s\n", version)
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	handleNote(os.Args[1:])
}

func printUsage() {
	usage := `weeknote - Weekly markdown notes

Create weekly markdown notes organized as YYYY/MM-DD.md, one file per
work-week, named after the week's Monday.

Usage:
  weeknote [options] [date]
  weeknote <command> [options]

Date:
  this, today       This week (default)
  last              Last week
  YYYY-MM-DD        The week containing that date
                    (also YYYY/MM/DD, DD-MM-YYYY, DD/MM/YYYY, YY-MM-DD, YY/MM/DD)

Options:
  --dir <path>      Base directory; defaults to $HOME/.notes
  --todo            Print the TODO section and exit
  --blockers        Print the Blockers section and exit

Commands:
  list, ls          Browse existing notes interactively
  diff [date]       Show changes against the previous week's note
  version           Show version information
  help              Show this help message

Examples:
  weeknote                  create or open this week's note
  weeknote last --todo      print last week's TODO section
  weeknote 2024-01-01       open the note for the week of Jan 1 2024
`
	fmt.Print(usage)
}

func handleNote(args []string) {
	fs := flag.NewFlagSet("weeknote", flag.ExitOnError)
	dir := fs.String("dir", "", "base directory; defaults to $HOME/.notes")
	todo := fs.Bool("todo", false, "print the TODO section")
	blockers := fs.Bool("blockers", false, "print the Blockers section")
	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	// flag stops at the first positional argument, so "weeknote last
	// --todo" leaves --todo unparsed; pick up the token and re-parse
	// whatever follows it.
	token := fs.Arg(0)
	if fs.NArg() > 1 {
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			os.Exit(1)
		}
	}

	cfg, log := setup(*dir)
	now := time.Now()

	if *todo || *blockers {
		section := "TODO"
		if *blockers {
			section = "Blockers"
		}
		catSection(cfg.NotesDir, token, section, now)
		return
	}

	w, err := week.Resolve(token, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}

	created, err := createAndOpen(cfg, w, now, editor.NewExec(cfg.Editor))
	if created {
		log.Info("created note", "path", w.Path(cfg.NotesDir), "week", fmt.Sprintf("%d W%d", w.Year, w.Week))
	}
	if err != nil {
		log.Error("editor failed", "editor", cfg.Editor, "err", err)
		os.Exit(1)
	}
}

// createAndOpen ensures the week's note exists, seeding a new note
// from the template with carried-forward sections, then opens it in
// the editor and tightens its permissions. Reports whether a new note
// was created even when the editor subsequently fails.
func createAndOpen(cfg *config.Config, w week.Week, now time.Time, ed editor.Editor) (created bool, err error) {
	path := w.Path(cfg.NotesDir)

	if !note.Exists(path) {
		carriedTODO, carriedBlockers := note.CarryForward(cfg.NotesDir, now)

		tmpl := note.DefaultTemplate()
		if cfg.DateFormat != "" {
			tmpl.DateFormat = cfg.DateFormat
		}
		content, err := tmpl.Render(w, carriedTODO, carriedBlockers)
		if err != nil {
			return false, err
		}
		if err := note.Create(path, content); err != nil {
			return false, err
		}
		created = true
	}

	if err := ed.Open(path); err != nil {
		return created, err
	}
	note.TightenPerms(path)
	return created, nil
}

// catSection prints a single section of the resolved week's note.
// A missing note or section is reported but is not an error.
func catSection(baseDir, token, section string, now time.Time) {
	path, err := week.FilePath(baseDir, token, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}

	body, ok := note.SectionFromFile(path, section)
	if !ok {
		if token != "" {
			fmt.Printf("No notes found for date '%s'\n", token)
		} else {
			fmt.Println("No notes found for this week")
		}
		return
	}
	fmt.Println(body)
}

func handleList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dir := fs.String("dir", "", "base directory; defaults to $HOME/.notes")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, log := setup(*dir)
	if err := tui.Browse(cfg.ExpandedNotesDir()); err != nil {
		log.Fatal("browse failed", "err", err)
	}
}

func handleDiff(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	dir := fs.String("dir", "", "base directory; defaults to $HOME/.notes")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	token := fs.Arg(0)
	if fs.NArg() > 1 {
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			os.Exit(1)
		}
	}

	cfg, log := setup(*dir)
	w, err := week.Resolve(token, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}

	prev := w.Previous()
	out, err := diff.Notes(prev.Path(cfg.NotesDir), w.Path(cfg.NotesDir))
	if err != nil {
		log.Fatal("diff failed", "err", err)
	}
	if out == "" {
		fmt.Printf("No changes between %d W%d and %d W%d\n", prev.Year, prev.Week, w.Year, w.Week)
		return
	}
	fmt.Print(out)
}

// setup loads config, applies the --dir override and builds the logger.
func setup(dirOverride string) (*config.Config, *logger.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if dirOverride != "" {
		cfg.NotesDir = dirOverride
	}
	log := logger.NewWithLevel(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	return cfg, log
}
