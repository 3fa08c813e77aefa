package band

import "charm.land/lipgloss/v2"

var (
	colorTeal  = lipgloss.Color("#00F19F")
	colorSleep = lipgloss.Color("#7BA1BB")
	colorDim   = lipgloss.Color("#666666")
)

// Theme styles the report. The zero value (and PlainTheme) writes unstyled text.
type Theme struct {
	styled bool
	date   lipgloss.Style
	steps  lipgloss.Style
	sleep  lipgloss.Style
	dim    lipgloss.Style
}

func NewTheme() Theme {
	return Theme{
		styled: true,
		date:   lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		steps:  lipgloss.NewStyle().Foreground(colorTeal),
		sleep:  lipgloss.NewStyle().Foreground(colorSleep),
		dim:    lipgloss.NewStyle().Foreground(colorDim),
	}
}

func PlainTheme() Theme { return Theme{} }

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.styled {
		return s
	}
	return style.Render(s)
}

func (t Theme) Date(s string) string  { return t.render(t.date, s) }
func (t Theme) Steps(s string) string { return t.render(t.steps, s) }
func (t Theme) Sleep(s string) string { return t.render(t.sleep, s) }
func (t Theme) Dim(s string) string   { return t.render(t.dim, s) }
