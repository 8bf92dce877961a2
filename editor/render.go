package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/abacus/internal/grapheme"
)

func (m Model) render() string {
	base := lipgloss.JoinVertical(lipgloss.Left, m.renderDisplay(), m.renderPad())
	if !m.showHelp {
		return base
	}
	return overlay.New(staticView(m.renderHelp()), staticView(base), overlay.Center, overlay.Center, 0, 0).View()
}

// staticView is pre-rendered output handed to the overlay as a tea.Model.
type staticView string

func (v staticView) Init() tea.Cmd                       { return nil }
func (v staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v staticView) View() string                        { return string(v) }

func (m Model) renderDisplay() string {
	return m.displayStyle().Render(m.renderDisplayLine(m.contentWidth()))
}

// renderDisplayLine renders exactly width cells of the display text,
// starting at the horizontal scroll offset.
func (m Model) renderDisplayLine(width int) string {
	st := m.cfg.Style
	clusters := m.buf.Graphemes()
	styles := m.tokenStyles(clusters)
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	var sb strings.Builder
	used := 0
	cell := 0
	for i, c := range clusters {
		w := cellWidth(c)
		if cell < m.xOffset {
			// A wide cluster cut by the left edge leaves blanks.
			if cell+w > m.xOffset {
				pad := cell + w - m.xOffset
				sb.WriteString(strings.Repeat(" ", pad))
				used += pad
			}
			cell += w
			continue
		}
		if used+w > width {
			break
		}

		text := c
		if grapheme.IsSpace(c) {
			text = " "
		}
		style := styles[i]
		if selOK && i >= sel.Start && i < sel.End {
			style = st.Selection.Inherit(style)
		}
		if m.focused && !selOK && i == cursor {
			style = st.Cursor.Inherit(style)
		}
		sb.WriteString(style.Render(text))
		used += w
		cell += w
	}

	if m.focused && !selOK && cursor >= len(clusters) && used < width {
		sb.WriteString(st.Cursor.Render(" "))
		used++
	}
	if used < width {
		sb.WriteString(st.Text.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

func (m Model) buttonStyle(b Button) lipgloss.Style {
	st := m.cfg.Style
	switch b.Action {
	case ActionOperator:
		return st.ButtonOperator
	case ActionEvaluate:
		return st.ButtonEquals
	case ActionClear, ActionRemoveLastNumber, ActionDeleteLast:
		return st.ButtonCommand
	default:
		return st.Button
	}
}

func (m Model) renderPad() string {
	gap := strings.Repeat(" ", buttonGap)
	rows := make([]string, 0, len(m.cfg.Buttons))
	for _, row := range m.cfg.Buttons {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, m.buttonStyle(b).
				Width(m.cfg.ButtonWidth).
				MaxWidth(m.cfg.ButtonWidth).
				Align(lipgloss.Center).
				Render(b.Label))
		}
		rows = append(rows, strings.Join(cells, gap))
	}
	sep := "\n" + strings.Repeat("\n", buttonGap)
	return strings.Join(rows, sep)
}

func (m Model) renderHelp() string {
	return m.cfg.Style.HelpBox.Render(m.help.View(m.cfg.KeyMap))
}
