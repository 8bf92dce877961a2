package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/abacus/internal/grapheme"
)

// buttonGap is the number of blank cells between buttons in a row and the
// number of blank lines between rows.
const buttonGap = 1

// minDisplayContent keeps the display usable on very narrow terminals.
const minDisplayContent = 4

type hitKind uint8

const (
	hitNone hitKind = iota
	hitDisplay
	hitButton
)

type hit struct {
	kind   hitKind
	offset int    // hitDisplay: grapheme offset nearest to the click
	button Button // hitButton
}

func (m Model) displayStyle() lipgloss.Style {
	if m.focused {
		return m.cfg.Style.DisplayFocused
	}
	return m.cfg.Style.Display
}

func (m Model) padWidth() int {
	widest := 0
	for _, row := range m.cfg.Buttons {
		widest = maxInt(widest, len(row))
	}
	if widest == 0 {
		return 0
	}
	return widest*m.cfg.ButtonWidth + (widest-1)*buttonGap
}

// displayWidth is the full outer width of the display, frame included.
func (m Model) displayWidth() int {
	w := maxInt(m.padWidth(), m.cfg.DisplayWidth)
	if m.width > 0 && w > m.width {
		w = m.width
	}
	return w
}

func (m Model) contentWidth() int {
	frame := maxInt(m.cfg.Style.Display.GetHorizontalFrameSize(), m.cfg.Style.DisplayFocused.GetHorizontalFrameSize())
	return maxInt(m.displayWidth()-frame, minDisplayContent)
}

func (m Model) displayHeight() int {
	return m.displayStyle().GetVerticalFrameSize() + 1
}

func (m Model) displayContentOrigin() (x, y int) {
	st := m.displayStyle()
	x = st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	y = st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
	return x, y
}

// hitTest maps component-local cell coordinates to the display or a button.
func (m Model) hitTest(x, y int) hit {
	if x < 0 || y < 0 {
		return hit{}
	}

	dh := m.displayHeight()
	if y < dh {
		if x >= m.displayWidth() {
			return hit{}
		}
		return hit{kind: hitDisplay, offset: m.displayOffsetAt(x)}
	}

	rel := y - dh
	if rel%(1+buttonGap) != 0 {
		return hit{}
	}
	row := rel / (1 + buttonGap)
	if row >= len(m.cfg.Buttons) {
		return hit{}
	}
	stride := m.cfg.ButtonWidth + buttonGap
	col := x / stride
	if x%stride >= m.cfg.ButtonWidth || col >= len(m.cfg.Buttons[row]) {
		return hit{}
	}
	return hit{kind: hitButton, button: m.cfg.Buttons[row][col]}
}

// displayOffsetAt returns the grapheme boundary nearest to cell column x.
// Columns left of the text map to 0 and columns past it to the end.
func (m Model) displayOffsetAt(x int) int {
	left, _ := m.displayContentOrigin()
	cx := x - left + m.xOffset
	if cx <= 0 {
		return 0
	}

	acc := 0
	clusters := m.buf.Graphemes()
	for i, c := range clusters {
		w := cellWidth(c)
		if cx < acc+(w+1)/2 {
			return i
		}
		acc += w
	}
	return len(clusters)
}

// cellWidth is the number of display cells a cluster occupies. Whitespace
// always renders as a single blank.
func cellWidth(cluster string) int {
	if grapheme.IsSpace(cluster) {
		return 1
	}
	return grapheme.Width(cluster)
}
