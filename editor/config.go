package editor

import "github.com/iw2rmb/abacus/calc"

// Config configures the editor Model.
type Config struct {
	// Initial display text.
	Text string

	// Focused starts the component with the display focused.
	Focused bool

	// FocusOnPress focuses the display after every button press or pad key,
	// the way a browser calculator hands focus back to its input field.
	FocusOnPress bool

	// DisplayWidth is the minimum width of the display in cells. The
	// display is never narrower than the button pad.
	DisplayWidth int

	// Buttons is the pad layout, one slice per row. Nil uses DefaultButtons.
	Buttons [][]Button
	// ButtonWidth is the cell width of one button. Zero uses 5.
	ButtonWidth int

	KeyMap KeyMap
	Style  Style

	// Clipboard is optional; copy, cut, and paste are no-ops without it.
	Clipboard Clipboard

	// OnChange fires after every update that changed the display text,
	// caret, or selection.
	OnChange func(ChangeEvent)

	// OnEvaluate observes every non-empty evaluation.
	OnEvaluate func(calc.Evaluation)
}

const defaultButtonWidth = 5

func normalizeConfig(cfg Config) Config {
	if cfg.ButtonWidth <= 0 {
		cfg.ButtonWidth = defaultButtonWidth
	}
	if cfg.Buttons == nil {
		cfg.Buttons = DefaultButtons()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
