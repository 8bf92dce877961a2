package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the component's rendering. The zero Style renders plain
// text with no frame around the display.
type Style struct {
	// Display frames the display line; DisplayFocused replaces it while the
	// display has focus.
	Display        lipgloss.Style
	DisplayFocused lipgloss.Style

	Text      lipgloss.Style
	Number    lipgloss.Style
	Operator  lipgloss.Style
	Paren     lipgloss.Style
	Invalid   lipgloss.Style
	Error     lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Button         lipgloss.Style
	ButtonOperator lipgloss.Style
	ButtonCommand  lipgloss.Style
	ButtonEquals   lipgloss.Style

	HelpBox lipgloss.Style
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238"))

	return Style{
		Display:        frame,
		DisplayFocused: frame.BorderForeground(lipgloss.Color("39")),

		Text:      lipgloss.NewStyle(),
		Number:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Operator:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Paren:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Invalid:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Underline(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),

		Button:         button,
		ButtonOperator: button.Foreground(lipgloss.Color("214")),
		ButtonCommand:  button.Foreground(lipgloss.Color("203")),
		ButtonEquals:   button.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Bold(true),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1),
	}
}
