package note

import (
	"strings"
	"text/template"

	"github.com/nfvs/weeknote/internal/week"
)

// defaultBody is the note skeleton; its blank lines are significant.
// A non-empty TODO carry-forward carries its own trailing newline, so
// carried items keep a full blank line before the next heading.
const defaultBody = `# {{.Year}} W{{.Week}} ({{.WeekStart}} - {{.WeekEnd}})


## Done


## TODO

{{.TODO}}

## Blockers

{{.Blockers}}

`

// DefaultDateFormat renders header dates as YYYY/MM/DD.
const DefaultDateFormat = "2006/01/02"

// Template holds the note skeleton and the date display format. It is
// passed around as a value so tests can substitute alternate layouts
// without touching shared state.
type Template struct {
	Body       string
	DateFormat string
}

// DefaultTemplate returns the standard weekly note template.
func DefaultTemplate() Template {
	return Template{Body: defaultBody, DateFormat: DefaultDateFormat}
}

// Render produces the initial note content for a week, seeding the
// TODO and Blockers sections with carried-forward text when present.
func (t Template) Render(w week.Week, todo, blockers string) (string, error) {
	tmpl, err := template.New("note").Parse(t.Body)
	if err != nil {
		return "", err
	}

	if todo != "" {
		todo += "\n"
	}

	data := struct {
		Year      int
		Week      int
		WeekStart string
		WeekEnd   string
		TODO      string
		Blockers  string
	}{
		Year:      w.Year,
		Week:      w.Week,
		WeekStart: w.Start().Format(t.DateFormat),
		WeekEnd:   w.End().Format(t.DateFormat),
		TODO:      todo,
		Blockers:  blockers,
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
