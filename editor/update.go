package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/buffer"
	"github.com/iw2rmb/abacus/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	if m.showHelp {
		if key.Matches(msg, km.Help, km.Escape, km.Submit) {
			m.showHelp = false
		}
		return m
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if m.focused && len(msg.Runes) > 0 {
			m.calc.InsertText(string(msg.Runes))
		}
		return m
	}

	switch {
	case key.Matches(msg, km.Submit):
		m.calc.Evaluate()
		return m
	case key.Matches(msg, km.Escape):
		m.calc.DeleteLast()
		return m
	case key.Matches(msg, km.ToggleFocus):
		if m.focused {
			return m.Blur()
		}
		return m.Focus()
	}

	if m.focused {
		return m.updateTextKey(msg)
	}
	return m.updatePadKey(msg)
}

// updatePadKey handles keys while the display is not focused.
func (m Model) updatePadKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Digit, km.Decimal):
		return m.press(ActionNumber, msg.String())
	case key.Matches(msg, km.Operator):
		return m.press(ActionOperator, msg.String())
	case key.Matches(msg, km.Paren):
		return m.press(ActionText, msg.String())
	case key.Matches(msg, km.Equals):
		return m.press(ActionEvaluate, "")
	case key.Matches(msg, km.DeleteLast):
		return m.press(ActionDeleteLast, "")
	case key.Matches(msg, km.ClearAll):
		return m.press(ActionClear, "")
	case key.Matches(msg, km.Help):
		m.showHelp = true
	case key.Matches(msg, km.Copy):
		m.copyText()
	}
	return m
}

// updateTextKey handles keys while the display is focused: plain text-field
// editing with no calculator policy applied.
func (m Model) updateTextKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()

	case key.Matches(msg, km.Copy):
		m.copyText()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeySpace {
			m.calc.InsertText(" ")
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.calc.InsertText(string(msg.Runes))
		}
	}
	return m
}

// selectedText returns the selection, or the whole display when nothing is
// selected.
func (m Model) selectedText() string {
	r, ok := m.buf.Selection()
	if !ok {
		return m.buf.Text()
	}
	return grapheme.Join(m.buf.Graphemes()[r.Start:r.End])
}

func (m Model) copyText() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.selectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if _, ok := m.buf.Selection(); !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.selectedText()); err != nil {
		return
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.calc.InsertText(s)
}
