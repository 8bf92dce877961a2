// Package config loads the optional abacus.toml file: key binding
// overrides, colors, and the initial focus of the display.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/abacus/editor"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "abacus.toml"

// File is the abacus.toml layout.
type File struct {
	Display DisplayConfig `toml:"display"`
	// Keys maps a binding name (see BindingNames) to its keys.
	Keys   map[string][]string `toml:"keys"`
	Colors ColorsConfig        `toml:"colors"`
}

type DisplayConfig struct {
	// Focused starts with the display focused.
	Focused bool `toml:"focused"`
	// FocusOnPress focuses the display after every pad press.
	FocusOnPress bool `toml:"focus_on_press"`
	// Width is the minimum display width in cells.
	Width int `toml:"width"`
	// ButtonWidth is the width of one pad button in cells.
	ButtonWidth int `toml:"button_width"`
}

// ColorsConfig holds lipgloss colors: ANSI numbers ("214") or hex ("#ffaa00").
// Empty values keep the default.
type ColorsConfig struct {
	Border        string `toml:"border"`
	BorderFocused string `toml:"border_focused"`
	Number        string `toml:"number"`
	Operator      string `toml:"operator"`
	Paren         string `toml:"paren"`
	Invalid       string `toml:"invalid"`
	Error         string `toml:"error"`
	Selection     string `toml:"selection"`
	Button        string `toml:"button"`
	Equals        string `toml:"equals"`
}

// Default is the configuration used when no file exists.
func Default() File {
	return File{
		Display: DisplayConfig{
			ButtonWidth: 5,
		},
	}
}

// Load reads path. An empty path means DefaultFile, which may be missing;
// an explicit path must exist.
func Load(path string) (File, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over cfg. Unknown tables and fields are errors.
func Parse(data []byte, cfg *File) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			fields := make([]string, 0, len(serr.Errors))
			for _, e := range serr.Errors {
				fields = append(fields, strings.Join(e.Key(), "."))
			}
			return fmt.Errorf("unknown field %s", strings.Join(fields, ", "))
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return err
	}

	for name, keys := range cfg.Keys {
		if _, ok := bindings(&editor.KeyMap{})[name]; !ok {
			return fmt.Errorf("unknown key binding %q", name)
		}
		if len(keys) == 0 {
			return fmt.Errorf("key binding %q has no keys", name)
		}
	}
	if cfg.Display.Width < 0 || cfg.Display.ButtonWidth < 0 {
		return errors.New("display widths must not be negative")
	}
	return nil
}

// Apply returns base with the file's settings applied on top.
func (f File) Apply(base editor.Config) editor.Config {
	cfg := base
	cfg.Focused = cfg.Focused || f.Display.Focused
	cfg.FocusOnPress = cfg.FocusOnPress || f.Display.FocusOnPress
	if f.Display.Width > 0 {
		cfg.DisplayWidth = f.Display.Width
	}
	if f.Display.ButtonWidth > 0 {
		cfg.ButtonWidth = f.Display.ButtonWidth
	}

	km := cfg.KeyMap
	if len(km.Submit.Keys()) == 0 {
		km = editor.DefaultKeyMap()
	}
	byName := bindings(&km)
	for name, keys := range f.Keys {
		b, ok := byName[name]
		if !ok {
			continue
		}
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), b.Help().Desc)
	}
	cfg.KeyMap = km

	cfg.Style = f.Colors.apply(cfg.Style)
	return cfg
}

func (c ColorsConfig) apply(st editor.Style) editor.Style {
	set := func(v string, fn func(lipgloss.Color)) {
		if v != "" {
			fn(lipgloss.Color(v))
		}
	}
	set(c.Border, func(col lipgloss.Color) { st.Display = st.Display.BorderForeground(col) })
	set(c.BorderFocused, func(col lipgloss.Color) {
		st.DisplayFocused = st.DisplayFocused.BorderForeground(col)
		st.HelpBox = st.HelpBox.BorderForeground(col)
	})
	set(c.Number, func(col lipgloss.Color) { st.Number = st.Number.Foreground(col) })
	set(c.Operator, func(col lipgloss.Color) {
		st.Operator = st.Operator.Foreground(col)
		st.ButtonOperator = st.ButtonOperator.Foreground(col)
	})
	set(c.Paren, func(col lipgloss.Color) { st.Paren = st.Paren.Foreground(col) })
	set(c.Invalid, func(col lipgloss.Color) { st.Invalid = st.Invalid.Foreground(col) })
	set(c.Error, func(col lipgloss.Color) {
		st.Error = st.Error.Foreground(col)
		st.ButtonCommand = st.ButtonCommand.Foreground(col)
	})
	set(c.Selection, func(col lipgloss.Color) { st.Selection = st.Selection.Background(col) })
	set(c.Button, func(col lipgloss.Color) {
		st.Button = st.Button.Background(col)
		st.ButtonOperator = st.ButtonOperator.Background(col)
		st.ButtonCommand = st.ButtonCommand.Background(col)
	})
	set(c.Equals, func(col lipgloss.Color) { st.ButtonEquals = st.ButtonEquals.Background(col) })
	return st
}

// BindingNames lists the names accepted in the [keys] table.
func BindingNames() []string {
	m := bindings(&editor.KeyMap{})
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func bindings(km *editor.KeyMap) map[string]*key.Binding {
	return map[string]*key.Binding{
		"submit":       &km.Submit,
		"escape":       &km.Escape,
		"toggle_focus": &km.ToggleFocus,
		"digit":        &km.Digit,
		"decimal":      &km.Decimal,
		"operator":     &km.Operator,
		"paren":        &km.Paren,
		"equals":       &km.Equals,
		"delete_last":  &km.DeleteLast,
		"clear_all":    &km.ClearAll,
		"help":         &km.Help,
		"left":         &km.Left,
		"right":        &km.Right,
		"shift_left":   &km.ShiftLeft,
		"shift_right":  &km.ShiftRight,
		"word_left":    &km.WordLeft,
		"word_right":   &km.WordRight,
		"home":         &km.Home,
		"end":          &km.End,
		"shift_home":   &km.ShiftHome,
		"shift_end":    &km.ShiftEnd,
		"select_all":   &km.SelectAll,
		"backspace":    &km.Backspace,
		"delete":       &km.Delete,
		"copy":         &km.Copy,
		"cut":          &km.Cut,
		"paste":        &km.Paste,
	}
}
