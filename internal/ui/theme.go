package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles styles, symbols and the page colours applied while the TUI runs.
// All output helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Row, Selected, Dragging, DropTarget, Delete   lipgloss.Style
	Notice, Confirm                               lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	// PageFg and PageBg are hex colours for the terminal's default colours.
	// Empty leaves the terminal alone.
	PageFg, PageBg string

	SymDone, SymFail, Grip, DeleteMark, Cursor string
}

var (
	current = ThemeFor("classic")

	// set while mono has forced the ASCII profile
	profileBeforeMono *termenv.Profile
)

// ThemeFor builds the named theme. Unknown names fall back to classic.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Dragging:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("53")).Foreground(lipgloss.Color("15")),
			DropTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Notice:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1),
			Confirm:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			PageFg:      "#f5f5ff",
			PageBg:      "#14001f",
			SymDone:     "✔", SymFail: "✖", Grip: "⋮⋮", DeleteMark: "[x]", Cursor: "▶",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Row:         plain,
			Selected:    plain.Reverse(true),
			Dragging:    plain.Reverse(true).Bold(true),
			DropTarget:  plain.Underline(true),
			Delete:      plain,
			Notice:      plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			Confirm:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymDone:     "x", SymFail: "!", Grip: "::", DeleteMark: "[x]", Cursor: ">",
		}
	default: // classic
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Dragging:    lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")),
			DropTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Delete:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Notice:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1),
			Confirm:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			PageFg:      "#ffffff",
			PageBg:      "#111827",
			SymDone:     "✔", SymFail: "✖", Grip: "⠿", DeleteMark: "[x]", Cursor: ">",
		}
	}
}

// SetTheme switches the theme used by the output helpers.
// mono also drops colour from every lipgloss render in the process; leaving
// mono puts back the profile that was in force before.
func SetTheme(name string) {
	current = ThemeFor(name)
	switch {
	case current.Name == "mono" && profileBeforeMono == nil:
		p := lipgloss.ColorProfile()
		profileBeforeMono = &p
		lipgloss.SetColorProfile(termenv.Ascii)
	case current.Name != "mono" && profileBeforeMono != nil:
		lipgloss.SetColorProfile(*profileBeforeMono)
		profileBeforeMono = nil
	}
}

// Current returns the active theme.
func Current() Theme { return current }
