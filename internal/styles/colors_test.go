package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStylesPreserveText(t *testing.T) {
	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{name: "error", style: ErrorStyle},
		{name: "title", style: TitleStyle},
		{name: "label", style: LabelStyle},
		{name: "help", style: HelpStyle},
		{name: "table", style: TableStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const msg = "unable to parse date 'junk'"
			if got := tt.style.Render(msg); !strings.Contains(got, msg) {
				t.Errorf("%s style dropped the message: %q", tt.name, got)
			}
		})
	}
}
