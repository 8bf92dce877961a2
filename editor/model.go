package editor

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/buffer"
	"github.com/iw2rmb/abacus/calc"
)

// Model is a Bubble Tea component that renders the calculator display and
// pad and routes input to a calc.Editor.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	calc *calc.Editor

	focused  bool
	showHelp bool
	help     help.Model

	width, height int

	// xOffset is the display's horizontal scroll in cells.
	xOffset int

	mouseDragging bool
	mouseAnchor   int

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	buf := buffer.New(cfg.Text)
	buf.SetCursor(buf.Len())

	m := Model{
		cfg:     cfg,
		buf:     buf,
		calc:    calc.NewWithBuffer(buf, calc.Options{OnEvaluate: cfg.OnEvaluate}),
		focused: cfg.Focused,
		help:    help.New(),
	}
	m.help.ShowAll = true
	m.lastBufVersion = buf.Version()
	m.followCursor()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Calculator returns the editor the component drives. Hosts may call its
// operations directly; the next Update picks up the change.
func (m Model) Calculator() *calc.Editor { return m.calc }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	m.followCursor()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.mouseDragging = false
	m.followCursor()
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ShowingHelp() bool { return m.showHelp }

// PressButton performs b as if it had been clicked.
func (m Model) PressButton(b Button) Model {
	m = m.press(b.Action, b.Token)
	m.followCursor()
	m.emitChange()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}

	// Hosts may also mutate the calculator directly between messages.
	m.followCursor()
	m.emitChange()
	return m, nil
}

func (m Model) View() string { return m.render() }

// press runs a pad action and applies the focus rule for presses.
func (m Model) press(a Action, token string) Model {
	if a == ActionNone {
		return m
	}
	perform(m.calc, a, token)
	if m.cfg.FocusOnPress {
		m.focused = true
	}
	return m
}

func (m *Model) emitChange() {
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(newChangeEvent(m.buf))
	}
}

// followCursor scrolls the display so the caret cell is visible.
func (m *Model) followCursor() {
	cw := m.contentWidth()
	if cw <= 0 {
		m.xOffset = 0
		return
	}

	clusters := m.buf.Graphemes()
	total := 0
	cur := 0
	for i, c := range clusters {
		if i == m.buf.Cursor() {
			cur = total
		}
		total += cellWidth(c)
	}
	if m.buf.Cursor() >= len(clusters) {
		cur = total
	}

	// One trailing cell for the caret at end of text.
	if total+1 <= cw {
		m.xOffset = 0
		return
	}
	if cur < m.xOffset {
		m.xOffset = cur
	}
	if cur >= m.xOffset+cw {
		m.xOffset = cur - cw + 1
	}
	maxOffset := total + 1 - cw
	m.xOffset = clampInt(m.xOffset, 0, maxInt(maxOffset, 0))
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
