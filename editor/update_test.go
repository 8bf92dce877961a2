package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/buffer"
)

func TestPadKeys_ApplyCalculatorPolicy(t *testing.T) {
	m := New(Config{})
	if m.Focused() {
		t.Fatalf("expected display unfocused by default")
	}

	m = typeKeys(m, "+")
	assertText(t, m, "")

	m = typeKeys(m, "-", "1", "2", "+", "*")
	assertText(t, m, "-12*")

	m = typeKeys(m, "(", "3", ".", "5", ")")
	assertText(t, m, "-12*(3.5)")

	m = press(m, tea.KeyEnter)
	assertText(t, m, "-42")
	assertCursor(t, m, 3)

	m = typeKeys(m, "/", "0", "=")
	assertText(t, m, "Error")

	m = press(m, tea.KeyDelete)
	assertText(t, m, "")

	m = typeKeys(m, "0", "0")
	assertText(t, m, "0")
}

func TestPadKeys_BackspaceAndEscapeDeleteLast(t *testing.T) {
	m := New(Config{Text: "12+3"})

	m = press(m, tea.KeyBackspace)
	assertText(t, m, "12+")

	m = press(m, tea.KeyEsc)
	assertText(t, m, "12")
	if m.Focused() {
		t.Fatalf("pad keys must not focus the display")
	}
}

func TestPadKeys_IgnoreLetters(t *testing.T) {
	m := New(Config{Text: "1"})
	m = typeKeys(m, "a", "x")
	assertText(t, m, "1")
}

func TestFocusedKeys_NativeEditing(t *testing.T) {
	m := New(Config{Focused: true})

	// No operator coalescing or leading-operator rule while typing natively.
	m = typeKeys(m, "*", "+", "2", "a")
	assertText(t, m, "*+2a")

	m = press(m, tea.KeyLeft)
	m = press(m, tea.KeyLeft)
	assertCursor(t, m, 2)

	m = press(m, tea.KeyBackspace)
	assertText(t, m, "*2a")
	assertCursor(t, m, 1)

	m = press(m, tea.KeyDelete)
	assertText(t, m, "*a")

	m = press(m, tea.KeyHome)
	assertCursor(t, m, 0)
	m = press(m, tea.KeyEnd)
	assertCursor(t, m, 2)

	m = press(m, tea.KeyShiftLeft)
	m = press(m, tea.KeyShiftLeft)
	r, ok := m.Buffer().Selection()
	if !ok || r != (buffer.Range{Start: 0, End: 2}) {
		t.Fatalf("selection: got %v ok=%v, want {0 2}", r, ok)
	}

	m = typeKeys(m, "7")
	assertText(t, m, "7")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assertText(t, m, "7 ")
}

func TestFocusedKeys_EnterAndEscapeIntercepted(t *testing.T) {
	m := New(Config{Text: "6*7", Focused: true})

	m = press(m, tea.KeyEnter)
	assertText(t, m, "42")
	if !m.Focused() {
		t.Fatalf("evaluate must not change focus")
	}

	m = press(m, tea.KeyEsc)
	assertText(t, m, "4")
}

func TestFocusedKeys_WordMovement(t *testing.T) {
	m := New(Config{Text: "12.5*(30-4)", Focused: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	assertCursor(t, m, 9)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	assertCursor(t, m, 6)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	assertCursor(t, m, 0)

	m = press(m, tea.KeyCtrlA)
	if r, ok := m.Buffer().Selection(); !ok || r.Len() != 11 {
		t.Fatalf("select all: got %v ok=%v", r, ok)
	}
}

func TestToggleFocus(t *testing.T) {
	m := New(Config{})
	m = press(m, tea.KeyTab)
	if !m.Focused() {
		t.Fatalf("tab should focus the display")
	}
	m = press(m, tea.KeyTab)
	if m.Focused() {
		t.Fatalf("tab should blur the display")
	}
}

func TestPaste_OnlyWhenFocused(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1+1"), Paste: true})
	assertText(t, m, "")

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1+\n1"), Paste: true})
	assertText(t, m, "1+ 1")
}

func TestFocusOnPress(t *testing.T) {
	m := New(Config{FocusOnPress: true})
	m = typeKeys(m, "5")
	if !m.Focused() {
		t.Fatalf("pad key should focus the display")
	}
	// Once focused, typing is native: no zero guard.
	m = m.Blur()
	m.Calculator().Clear()
	m = typeKeys(m, "0")
	m = typeKeys(m, "0")
	assertText(t, m, "00")
}

func TestClipboard_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "12+34", Clipboard: cb})

	m = press(m, tea.KeyCtrlC)
	if cb.s != "12+34" {
		t.Fatalf("copy without selection: got %q, want whole display", cb.s)
	}

	m = m.Focus()
	m = press(m, tea.KeyShiftLeft)
	m = press(m, tea.KeyShiftLeft)
	m = press(m, tea.KeyCtrlX)
	if cb.s != "34" {
		t.Fatalf("cut: got %q, want %q", cb.s, "34")
	}
	assertText(t, m, "12+")

	cb.s = "5*5"
	m = press(m, tea.KeyCtrlV)
	assertText(t, m, "12+5*5")
}

func TestClipboard_ErrorsAreIgnored(t *testing.T) {
	cb := &memClipboard{err: errors.New("no clipboard")}
	m := New(Config{Text: "12", Clipboard: cb, Focused: true})

	m = press(m, tea.KeyShiftLeft)
	m = press(m, tea.KeyCtrlX)
	assertText(t, m, "12")

	m = press(m, tea.KeyCtrlV)
	assertText(t, m, "12")
}

func TestHelpOverlay(t *testing.T) {
	m := New(Config{Text: "9"})
	m = typeKeys(m, "?")
	if !m.ShowingHelp() {
		t.Fatalf("expected help visible")
	}

	// Keys are swallowed while help is open.
	m = typeKeys(m, "1")
	assertText(t, m, "9")

	m = press(m, tea.KeyEsc)
	if m.ShowingHelp() {
		t.Fatalf("expected help closed")
	}
	assertText(t, m, "9")
}
