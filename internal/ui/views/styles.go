package views

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"lassopick/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	ModeAdd       lipgloss.Style
	ModeRemove    lipgloss.Style
	Count         lipgloss.Style
	Dim           lipgloss.Style
	Prompt        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style

	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Lasso      lipgloss.Style
}

// NewStyles creates a new Styles instance from the UI settings
func NewStyles(ui config.UISettings) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		ModeAdd: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.SelectedColor)),
		ModeRemove: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.UnselectedColor)),
		Count:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Prompt:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // yellow
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),            // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
		Help:          lipgloss.NewStyle().Faint(true),

		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ui.SelectedColor)),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.UnselectedColor)),
		Lasso:      lipgloss.NewStyle().Foreground(lipgloss.Color(ui.LassoColor)),
	}
}

// GrayColor maps an 8-bit gray level onto the 24-step xterm gray ramp
func GrayColor(level uint8) lipgloss.Color {
	step := int(level) * 23 / 255
	return lipgloss.Color(strconv.Itoa(232 + step))
}
