package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the component's key bindings.
//
// Pad bindings apply while the display is not focused. Text bindings apply
// while it is. Submit and Escape apply in both modes.
type KeyMap struct {
	// Both modes.
	Submit, Escape key.Binding
	ToggleFocus    key.Binding

	// Pad mode.
	Digit, Decimal       key.Binding
	Operator             key.Binding
	Paren                key.Binding
	Equals               key.Binding
	DeleteLast, ClearAll key.Binding
	Help                 key.Binding

	// Text mode.
	Left, Right           key.Binding
	ShiftLeft, ShiftRight key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	ShiftHome, ShiftEnd   key.Binding
	SelectAll             key.Binding
	Backspace, Delete     key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "delete last")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit display / pad")),

		Digit:      key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "digit")),
		Decimal:    key.NewBinding(key.WithKeys("."), key.WithHelp(".", "decimal point")),
		Operator:   key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+-*/", "operator")),
		Paren:      key.NewBinding(key.WithKeys("(", ")"), key.WithHelp("()", "parenthesis")),
		Equals:     key.NewBinding(key.WithKeys("="), key.WithHelp("=", "evaluate")),
		DeleteLast: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete last")),
		ClearAll:   key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "operand left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "operand right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Submit, km.Escape, km.ToggleFocus, km.Help}
}

// FullHelp implements help.KeyMap. Columns group pad keys, text keys, and
// clipboard keys.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Digit, km.Decimal, km.Operator, km.Paren, km.Equals, km.Submit, km.DeleteLast, km.Escape, km.ClearAll},
		{km.Left, km.Right, km.ShiftLeft, km.ShiftRight, km.WordLeft, km.WordRight, km.Home, km.End, km.SelectAll},
		{km.Copy, km.Cut, km.Paste, km.ToggleFocus, km.Help},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Submit.Keys()) == 0 && len(km.Digit.Keys()) == 0 && len(km.Left.Keys()) == 0
}
