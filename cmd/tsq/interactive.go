package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/relayspeak/tscommands/codec"
	"github.com/relayspeak/tscommands/messages"
	"github.com/relayspeak/tscommands/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cmdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err        error
	dispatcher *codec.Dispatcher[messages.Notification]
	result     string
	cmds       []cmdInfo
	inputs     []textinput.Model
	selected   int
	focusIdx   int
	state      modelState
}

type cmdInfo struct {
	notify  string
	message string
	params  []paramInfo
}

type paramInfo struct {
	wire    string
	typeStr string
}

type modelState int

const (
	stateSelectCmd modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(d *codec.Dispatcher[messages.Notification]) *interactiveModel {
	var cmds []cmdInfo
	for _, name := range d.Names() {
		cm, _ := d.Lookup(name)
		ci := cmdInfo{notify: name, message: cm.Name()}
		for _, f := range cm.Fields() {
			t := f.Type
			if f.List {
				t = "[]" + t
			}
			ci.params = append(ci.params, paramInfo{wire: f.Wire, typeStr: t})
		}
		cmds = append(cmds, ci)
	}

	return &interactiveModel{
		dispatcher: d,
		cmds:       cmds,
		state:      stateSelectCmd,
	}
}

type dispatchResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectCmd && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectCmd && m.selected < len(m.cmds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectCmd:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.dispatch
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.dispatch

			case stateShowResult:
				m.state = stateSelectCmd
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectCmd
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectCmd
				m.result = ""
				m.err = nil
			}
		}

	case dispatchResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	c := m.cmds[m.selected]
	m.inputs = make([]textinput.Model, len(c.params))
	for i, p := range c.params {
		ti := textinput.New()
		ti.Placeholder = p.typeStr
		ti.Prompt = p.wire + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) dispatch() tea.Msg {
	c := m.cmds[m.selected]

	args := make(map[string]string)
	for i, input := range m.inputs {
		if v := input.Value(); v != "" {
			args[c.params[i].wire] = v
		}
	}

	n, err := m.dispatcher.Dispatch(&wire.CanonicalCommand{Name: c.notify, Args: args})
	if err != nil {
		return dispatchResultMsg{err: err}
	}

	return dispatchResultMsg{result: fmt.Sprintf("%+v", n)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TS Query Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectCmd:
		b.WriteString("Select a command to dispatch:\n\n")
		for i, c := range m.cmds {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatCmd(c)))
			} else {
				b.WriteString(cursor + m.formatCmd(c))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter dispatch • q quit"))

	case stateInputArgs:
		c := m.cmds[m.selected]
		b.WriteString(fmt.Sprintf("Dispatching %s\n\n", cmdStyle.Render(c.notify)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(c.params[i].typeStr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter dispatch • esc back"))

	case stateShowResult:
		c := m.cmds[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", cmdStyle.Render(c.notify)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatCmd(c cmdInfo) string {
	var params []string
	for _, p := range c.params {
		params = append(params, p.wire+": "+typeStyle.Render(p.typeStr))
	}
	return cmdStyle.Render(c.notify) + " -> " + c.message + "(" + strings.Join(params, ", ") + ")"
}

func runInteractive(d *codec.Dispatcher[messages.Notification]) error {
	p := tea.NewProgram(newInteractiveModel(d), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
