package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lisper-lang/lisper"
	"github.com/lisper-lang/lisper/diag"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput  textinput.Model
	session    *lisper.Session
	printBuf   *bytes.Buffer
	history    []historyEntry
	cmdHistory []string
	historyIdx int
	quitting   bool
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "(add 1 2)"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "ready> "

	buf := &bytes.Buffer{}
	return replModel{
		textInput:  ti,
		session:    lisper.NewSession(buf),
		printBuf:   buf,
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d", "esc":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+l":
			m.history = nil
			return m, nil

		case "up":
			if len(m.cmdHistory) > 0 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
				}
				m.textInput.SetValue(m.cmdHistory[len(m.cmdHistory)-1-m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case "down":
			if m.historyIdx > 0 {
				m.historyIdx--
				m.textInput.SetValue(m.cmdHistory[len(m.cmdHistory)-1-m.historyIdx])
				m.textInput.CursorEnd()
			} else {
				m.historyIdx = -1
				m.textInput.SetValue("")
			}
			return m, nil

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	m.historyIdx = -1

	if line == "" {
		return m, nil
	}
	if line == "exit" || line == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.cmdHistory = append(m.cmdHistory, line)

	output, err := m.evalLine(line)
	entry := historyEntry{input: line, output: output}
	if err != nil {
		// one diagnostic per failure; the session stays usable
		entry.output = diag.FromError(err).Format()
		entry.isErr = true
	}
	m.history = append(m.history, entry)

	return m, nil
}

func (m *replModel) evalLine(line string) (string, error) {
	m.printBuf.Reset()

	root, err := lisper.Parse([]byte(line))
	if err != nil {
		return "", err
	}

	var last string
	for _, n := range root.List() {
		if err := requireList(n); err != nil {
			return "", err
		}
		v, err := m.session.Interp().Eval(n)
		if err != nil {
			return "", err
		}
		last = v.String()
	}

	out := m.printBuf.String()
	if last != "" {
		out += last
	}
	return strings.TrimRight(out, "\n"), nil
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render("lisper: type an expression, ctrl+d to quit"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(promptStyle.Render("ready> "))
		b.WriteString(entry.input)
		b.WriteString("\n")
		if entry.output != "" {
			if entry.isErr {
				b.WriteString(errorStyle.Render(entry.output))
			} else {
				b.WriteString(resultStyle.Render(entry.output))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	return b.String()
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel())
	_, err := p.Run()
	return err
}
