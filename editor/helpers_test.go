package editor

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(runes(k))
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return m
}

func assertText(t *testing.T, m Model, want string) {
	t.Helper()
	if got := m.Buffer().Text(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, m Model, want int) {
	t.Helper()
	if got := m.Buffer().Cursor(); got != want {
		t.Fatalf("cursor: got %d, want %d", got, want)
	}
}
