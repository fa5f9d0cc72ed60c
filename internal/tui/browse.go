// Package tui implements the interactive weekly note browser.
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/nfvs/weeknote/internal/styles"
)

// PreviewMsg is sent when a note preview is ready
type PreviewMsg struct {
	Content string
	Err     error
}

type browseModel struct {
	table        table.Model
	viewport     viewport.Model
	notes        []NoteInfo
	err          error
	showingNote  bool
	selectedNote *NoteInfo
	width        int
	height       int
}

// NewBrowseModel creates a browser over the given notes
func NewBrowseModel(notes []NoteInfo) browseModel {
	columns := []table.Column{
		{Title: "Week", Width: 12},
		{Title: "Mon - Fri", Width: 26},
		{Title: "TODO", Width: 6},
		{Title: "File", Width: 30},
	}

	rows := make([]table.Row, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d W%d", n.Week.Year, n.Week.Week),
			n.RangeLabel,
			strconv.Itoa(n.OpenTODOs),
			n.BaseName,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(1)

	return browseModel{
		table:    t,
		viewport: vp,
		notes:    notes,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 8)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.showingNote {
			switch msg.String() {
			case "q", "esc":
				m.showingNote = false
				return m, nil
			case "up", "k", "down", "j":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
		} else {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "up", "k", "down", "j":
				m.table, cmd = m.table.Update(msg)
				return m, cmd
			case "enter":
				if len(m.notes) > 0 && m.table.Cursor() < len(m.notes) {
					m.selectedNote = &m.notes[m.table.Cursor()]
					m.showingNote = true
					return m, m.loadPreview()
				}
				return m, nil
			}
		}

	case PreviewMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.showingNote = false
			return m, nil
		}
		m.viewport.SetContent(msg.Content)
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Weekly Notes"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if m.showingNote && m.selectedNote != nil {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%d W%d", m.selectedNote.Week.Year, m.selectedNote.Week.Week)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
	} else {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Notes: %d", len(m.notes))))
		b.WriteString("\n\n")
		b.WriteString(styles.TableStyle.Render(m.table.View()))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter preview • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

// loadPreview creates a command that renders the selected note
func (m browseModel) loadPreview() tea.Cmd {
	path := m.selectedNote.Path
	width := m.viewport.Width
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return PreviewMsg{Err: fmt.Errorf("failed to read note: %w", err)}
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return PreviewMsg{Content: string(data)}
		}

		rendered, err := renderer.Render(string(data))
		if err != nil {
			return PreviewMsg{Content: string(data)}
		}
		return PreviewMsg{Content: rendered}
	}
}

// Browse runs the note browser over all notes under baseDir
func Browse(baseDir string) error {
	notes, err := ScanNotes(baseDir)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	p := tea.NewProgram(NewBrowseModel(notes), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
