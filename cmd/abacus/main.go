package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/abacus"
	"github.com/iw2rmb/abacus/calc"
	"github.com/iw2rmb/abacus/editor"
	"github.com/iw2rmb/abacus/internal/config"
)

const tapeSize = 5

type options struct {
	configPath   string
	logPath      string
	noColor      bool
	focusOnPress bool
	expr         string
	version      bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("abacus", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	fs.StringVar(&o.logPath, "log", "", "append debug log to this file")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colors")
	fs.BoolVar(&o.focusOnPress, "focus-on-press", false, "focus the display after every pad press")
	fs.StringVar(&o.expr, "e", "", "evaluate an expression, print the result, and exit")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

// systemClipboard adapts the OS clipboard and logs its failures.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("clipboard read: %v", err)
	}
	return s, err
}

func (systemClipboard) WriteText(s string) error {
	err := clipboard.WriteAll(s)
	if err != nil {
		log.Printf("clipboard write: %v", err)
	}
	return err
}

type tape struct {
	lines []string
}

func (t *tape) record(ev calc.Evaluation) {
	if ev.Err != nil {
		log.Printf("evaluate %q: %v", ev.Expr, ev.Err)
	}
	t.lines = append(t.lines, ev.Expr+" = "+ev.Result)
	if len(t.lines) > tapeSize {
		t.lines = t.lines[len(t.lines)-tapeSize:]
	}
}

type model struct {
	editor editor.Model
	tape   *tape
	dim    lipgloss.Style
}

func newModel(cfg editor.Config, t *tape) model {
	return model{
		editor: editor.New(cfg),
		tape:   t,
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+d":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	mode := "pad"
	if m.editor.Focused() {
		mode = "edit"
	}
	status := m.dim.Render(fmt.Sprintf("mode: %s  ?: help  tab: switch  ctrl+q: quit", mode))

	parts := []string{m.editor.View(), "", status}
	for _, line := range m.tape.lines {
		parts = append(parts, m.dim.Render(line))
	}
	return strings.Join(parts, "\n")
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.version {
		_, err := fmt.Fprintln(stdout, abacus.Banner())
		return err
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "abacus")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if o.expr != "" {
		ed := calc.New(calc.Options{OnEvaluate: (&tape{}).record})
		ed.InsertText(o.expr)
		ed.Evaluate()
		_, err := fmt.Fprintln(stdout, ed.Text())
		return err
	}

	file, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	if o.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	t := &tape{}
	cfg := file.Apply(editor.Config{
		FocusOnPress: o.focusOnPress,
		Style:        editor.DefaultStyle(),
		Clipboard:    systemClipboard{},
		OnEvaluate:   t.record,
	})
	log.Printf("abacus %s starting (focused=%v focus_on_press=%v)", abacus.Version(), cfg.Focused, cfg.FocusOnPress)

	p := tea.NewProgram(newModel(cfg, t), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err == flag.ErrHelp {
			return
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
