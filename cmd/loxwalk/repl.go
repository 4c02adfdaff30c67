package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/eval"
	"loxwalk/internal/nativefn"
	"loxwalk/internal/parser"
	"loxwalk/internal/report"
	"loxwalk/internal/runtime"
	"loxwalk/internal/source"
	"loxwalk/internal/trace"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

// historyLine is one rendered entry in the REPL's scrollback: the echoed
// input plus whatever stdout/diagnostic text it produced.
type historyLine struct {
	input  string
	output string
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// replModel is the bubbletea model driving the REPL: one shared
// ast.Builder/runtime.Runtime/source.FileSet persist across submitted
// lines (an identifier declared on one line is visible on the next),
// grounded in spirit on akashmaji946-go-mix/repl.Repl's "loop holding one
// evaluator across lines" shape, rendered with bubbles/textinput and
// lipgloss instead of a bare readline prompt.
type replModel struct {
	input   textinput.Model
	history []historyLine
	fs      *source.FileSet
	builder *ast.Builder
	rt      *runtime.Runtime
	tracer  trace.Tracer
	prompt  string
	width   int
	lineNo  int
	quit    bool
}

func newReplModel(prompt string, tracer trace.Tracer, natives nativefn.Options, width int) *replModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.Focus()

	fs := source.NewFileSet()
	builder := ast.NewBuilder(ast.Hints{}, nil)
	rt := runtime.New(tracer)
	nativefn.Register(rt, natives)

	return &replModel{
		input:   ti,
		fs:      fs,
		builder: builder,
		rt:      rt,
		tracer:  tracer,
		prompt:  prompt,
		width:   width,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			if m.submit(line) {
				m.quit = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates one REPL line against the model's persistent runtime.
// Returns true if the line requested the session end.
func (m *replModel) submit(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if trimmed == ":quit" || trimmed == ":q" || trimmed == ".exit" {
		return true
	}

	entry := historyLine{input: line}
	defer func() { m.history = append(m.history, entry) }()

	fid := m.fs.AddVirtual(fmt.Sprintf("<repl:%d>", m.lineNo), []byte(line))
	m.lineNo++
	file := m.fs.Get(fid)

	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	sink := report.NewSink(bag)

	prog := parser.ParseFile(file, m.builder, parser.Options{Reporter: reporter, Tracer: m.tracer})

	var rendered bytes.Buffer
	if sink.HasErrors() {
		sink.Render(&rendered, m.fs)
		entry.output = errorStyle.Render(strings.TrimRight(rendered.String(), "\n"))
		return false
	}

	var out bytes.Buffer
	runErr := eval.Eval(prog.Stmts, m.builder, m.rt, eval.Options{
		Reporter: reporter,
		Tracer:   m.tracer,
		Stdout:   &out,
	})

	if runErr != nil {
		sink.Render(&rendered, m.fs)
		entry.output = errorStyle.Render(strings.TrimRight(rendered.String(), "\n"))
		return false
	}

	entry.output = outputStyle.Render(strings.TrimRight(out.String(), "\n"))
	return false
}

func (m *replModel) View() string {
	var b strings.Builder
	for _, h := range m.history {
		b.WriteString(promptStyle.Render(m.prompt))
		b.WriteString(echoStyle.Render(h.input))
		b.WriteString("\n")
		if h.output != "" {
			b.WriteString(h.output)
			b.WriteString("\n")
		}
	}
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("(ctrl+c or :quit to exit)"))
	return b.String()
}

// runRepl starts the interactive loop. Width is read once via
// golang.org/x/term to size the initial render; bubbletea's own
// tea.WindowSizeMsg keeps it current afterward.
func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracer := trace.FromContext(cmd.Context())
	defer tracer.Close()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	model := newReplModel(cfg.Prompt(), tracer, nativefn.Options{
		Stdout: os.Stdout,
		Allow:  cfg.NativeAllowlist(),
	}, width)

	_, err = tea.NewProgram(model).Run()
	return err
}
