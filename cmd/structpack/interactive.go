package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/structpack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateFormat modelState = iota
	stateValues
	stateResult
)

type explorerModel struct {
	err         error
	formatInput textinput.Model
	valuesInput textinput.Model
	encoded     []byte
	decoded     []any
	state       modelState
}

func newExplorerModel(format string) *explorerModel {
	fi := textinput.New()
	fi.Placeholder = "<2HI8s"
	fi.Prompt = "format: "
	fi.Width = 40
	fi.SetValue(format)
	fi.Focus()

	vi := textinput.New()
	vi.Placeholder = "1, 2, 3, hello"
	vi.Prompt = "values: "
	vi.Width = 40

	return &explorerModel{
		formatInput: fi,
		valuesInput: vi,
		state:       stateFormat,
	}
}

func (m *explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateFormat:
				m.state = stateValues
				m.formatInput.Blur()
				m.valuesInput.Focus()
			case stateValues:
				m.packAndUnpack()
				m.state = stateResult
			case stateResult:
				m.state = stateFormat
				m.encoded = nil
				m.decoded = nil
				m.err = nil
				m.valuesInput.Blur()
				m.formatInput.Focus()
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateFormat:
				return m, tea.Quit
			case stateValues:
				m.state = stateFormat
				m.valuesInput.Blur()
				m.formatInput.Focus()
			case stateResult:
				m.state = stateValues
				m.valuesInput.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateFormat:
		m.formatInput, cmd = m.formatInput.Update(msg)
	case stateValues:
		m.valuesInput, cmd = m.valuesInput.Update(msg)
	}
	return m, cmd
}

func (m *explorerModel) packAndUnpack() {
	format := m.formatInput.Value()
	buf, err := structpack.Pack(format, parseValues(m.valuesInput.Value()), true)
	if err != nil {
		m.err = err
		return
	}
	m.encoded = buf
	m.decoded, m.err = structpack.UnpackChecked(format, buf)
}

func (m *explorerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("structpack explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.formatInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.layoutView())

	switch m.state {
	case stateValues, stateResult:
		b.WriteString("\n")
		b.WriteString(m.valuesInput.View())
		b.WriteString("\n")
	}

	if m.state == stateResult {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		} else {
			b.WriteString(resultStyle.Render("encoded: " + hex.EncodeToString(m.encoded)))
			b.WriteString("\n")
			b.WriteString(resultStyle.Render(fmt.Sprintf("decoded: %v", m.decoded)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

// layoutView renders the live layout table for whatever format string is
// currently typed.
func (m *explorerModel) layoutView() string {
	format := m.formatInput.Value()
	fields := structpack.Fields(format)
	var b strings.Builder
	fmt.Fprintf(&b, "size: %d bytes\n", structpack.SizeOf(format))
	if len(fields) == 0 {
		return b.String()
	}
	b.WriteString(offsetStyle.Render("offset  size  code"))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(offsetStyle.Render(fmt.Sprintf("%6d  %4d  ", f.Offset, f.Size)))
		b.WriteString(codeStyle.Render(string(f.Code)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *explorerModel) helpLine() string {
	switch m.state {
	case stateFormat:
		return "enter: edit values • esc: quit"
	case stateValues:
		return "enter: pack • esc: back"
	default:
		return "enter: new format • esc: edit values"
	}
}

func runInteractive(format string) error {
	p := tea.NewProgram(newExplorerModel(format))
	_, err := p.Run()
	return err
}
