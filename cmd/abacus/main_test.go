package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/abacus/calc"
	"github.com/iw2rmb/abacus/editor"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "abacus v") {
		t.Fatalf("output: got %q", out.String())
	}
}

func TestRun_EvaluateFlag(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{expr: "2+3*4", want: "14"},
		{expr: " 0.1 + 0.2 ", want: "0.3"},
		{expr: "1/0", want: "Error"},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		if err := run([]string{"-e", tc.expr}, &out); err != nil {
			t.Fatalf("run(%q): %v", tc.expr, err)
		}
		if got := strings.TrimSpace(out.String()); got != tc.want {
			t.Fatalf("run(%q): got %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestParseFlags_RejectsArguments(t *testing.T) {
	if _, err := parseFlags([]string{"extra"}); err == nil {
		t.Fatalf("expected error for positional arguments")
	}
}

func TestTape_KeepsLastEntries(t *testing.T) {
	tp := &tape{}
	for i := 0; i < tapeSize+2; i++ {
		tp.record(calc.Evaluation{Expr: "1+1", Result: "2"})
	}
	if len(tp.lines) != tapeSize {
		t.Fatalf("tape: got %d lines, want %d", len(tp.lines), tapeSize)
	}
	if tp.lines[0] != "1+1 = 2" {
		t.Fatalf("tape line: got %q", tp.lines[0])
	}
}

func TestModel_QuitsAndRecords(t *testing.T) {
	tp := &tape{}
	m := newModel(editor.Config{Text: "6*7", OnEvaluate: tp.record}, tp)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(model).editor.Buffer().Text(); got != "42" {
		t.Fatalf("text: got %q, want %q", got, "42")
	}
	if !strings.Contains(next.View(), "6*7 = 42") {
		t.Fatalf("view missing tape entry:\n%s", next.View())
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q should return tea.Quit")
	}
}
