package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if m.showHelp {
			m.showHelp = false
			return m
		}

		h := m.hitTest(msg.X, msg.Y)
		switch h.kind {
		case hitDisplay:
			m.focused = true
			if msg.Shift {
				anchor := m.buf.Cursor()
				if raw, ok := m.buf.SelectionRaw(); ok {
					anchor = raw.Start
				}
				m.mouseAnchor = anchor
				m.buf.SetSelection(buffer.Range{Start: anchor, End: h.offset})
			} else {
				m.mouseAnchor = h.offset
				m.buf.SetCursor(h.offset)
			}
			m.mouseDragging = true
		case hitButton:
			// The button takes focus from the display unless presses hand it back.
			m.focused = false
			m = m.press(h.button.Action, h.button.Token)
		default:
			m.focused = false
		}

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		off := m.displayOffsetAt(msg.X)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: off})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}
