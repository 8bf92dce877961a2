package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/abacus/editor"
)

func TestLoad_MissingDefaultFileIsNotAnError(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.ButtonWidth != 5 || cfg.Display.Focused || len(cfg.Keys) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "nope.toml") {
		t.Fatalf("err=%v, want error naming the file", err)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abacus.toml")
	data := `
[display]
focused = true
width = 40

[keys]
submit = ["enter", "ctrl+s"]
help = ["f1"]

[colors]
operator = "#ffaa00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Display.Focused || cfg.Display.Width != 40 || cfg.Display.ButtonWidth != 5 {
		t.Fatalf("display: got %+v", cfg.Display)
	}
	if got := strings.Join(cfg.Keys["submit"], ","); got != "enter,ctrl+s" {
		t.Fatalf("submit keys: got %q", got)
	}
	if cfg.Colors.Operator != "#ffaa00" {
		t.Fatalf("operator color: got %q", cfg.Colors.Operator)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "syntax", data: "[display\nfocused = true", want: "line "},
		{name: "unknown field", data: "[display]\nfocus = true", want: "unknown field"},
		{name: "unknown binding", data: "[keys]\nlaunch = [\"x\"]", want: `unknown key binding "launch"`},
		{name: "empty binding", data: "[keys]\nhelp = []", want: `"help" has no keys`},
		{name: "negative width", data: "[display]\nwidth = -1", want: "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Parse([]byte(tt.data), &cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err=%v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	f := Default()
	f.Display.Focused = true
	f.Display.Width = 33
	f.Keys = map[string][]string{"submit": {"ctrl+s"}}
	f.Colors.Operator = "214"

	cfg := f.Apply(editor.Config{Style: editor.DefaultStyle()})

	if !cfg.Focused || cfg.DisplayWidth != 33 || cfg.ButtonWidth != 5 {
		t.Fatalf("display settings not applied: %+v", cfg)
	}
	if got := cfg.KeyMap.Submit.Keys(); len(got) != 1 || got[0] != "ctrl+s" {
		t.Fatalf("submit keys: got %v", got)
	}
	if got := cfg.KeyMap.Submit.Help().Key; got != "ctrl+s" {
		t.Fatalf("submit help key: got %q", got)
	}
	if got := cfg.KeyMap.Submit.Help().Desc; got != "evaluate" {
		t.Fatalf("submit help desc: got %q", got)
	}
	if len(cfg.KeyMap.Digit.Keys()) != 10 {
		t.Fatalf("untouched bindings should keep defaults")
	}
	if got := cfg.Style.Operator.GetForeground(); got != lipgloss.Color("214") {
		t.Fatalf("operator color: got %v", got)
	}
}

func TestBindingNames(t *testing.T) {
	names := BindingNames()
	if len(names) != 27 || names[0] != "backspace" {
		t.Fatalf("names: got %d starting %q", len(names), names[0])
	}
}
