package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/render"
)

const frameInterval = time.Second / 30

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	modeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Interactive scene view",
		Long: `Show the scene's render tree and drive it from the keyboard.

Keys:
  1-4      toggle the fill-in, option, ok and custom prompts
  e / f    press the primary / secondary action
  x        close the open prompt
  enter    type into the fill-in prompt (enter again to stop)
  + / -    change the counter
  ] / [    change the progress bar
  a        show the announcement
  l        show the loading indicator
  t        include hidden nodes
  q        quit`,
		Usage: "scenedemo run",
		Run:   runInteractive,
	})
}

func runInteractive(opts *Options, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("run takes no arguments")
	}
	res, err := opts.Resources()
	if err != nil {
		return err
	}
	events := newEventLog(6)
	errors.SetHandler(&errors.LogHandler{Verbose: opts.Verbose, Out: events})

	m := newModel(newDemo(res, events), events)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

type model struct {
	demo   *demo
	events *eventLog
	root   render.Node

	showAll bool
	typing  bool
	typed   string
}

func newModel(d *demo, events *eventLog) model {
	return model{demo: d, events: events, root: d.render()}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.demo.loop.Tick(time.Time(msg))
		m.root = m.demo.render()
		return m, tick()
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.demo
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1", "2", "3", "4":
		d.togglePrompt(int(msg.String()[0] - '1'))
	case "e":
		d.registry.Dispatch(input.ActionPrimary)
	case "f":
		d.registry.Dispatch(input.ActionSecondary)
	case "x":
		if p := d.visiblePrompt(); p != nil {
			p.Close()
		}
	case "enter":
		if d.fillIn.Visible() {
			m.typing = true
			m.typed = d.fillIn.Value()
		}
	case "+", "=":
		d.counter.Increase()
	case "-":
		d.counter.Decrease()
	case "]":
		d.bar.Increase()
	case "[":
		d.bar.Decrease()
	case "a":
		d.announcement.Show()
	case "l":
		d.loading.Show()
	case "t":
		m.showAll = !m.showAll
	}
	m.root = d.render()
	return m, nil
}

func (m model) updateTyping(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.typing = false
		return m
	case tea.KeyBackspace:
		if r := []rune(m.typed); len(r) > 0 {
			m.typed = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.typed += " "
	case tea.KeyRunes:
		m.typed += string(msg.Runes)
	default:
		return m
	}
	m.demo.fillIn.TextBox.Change(m.typed)
	m.root = m.demo.render()
	return m
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("scenedemo"))
	fmt.Fprintf(&b, "  counter %s  bar %.1f  frame %d\n\n",
		m.demo.counter.Text(), m.demo.bar.Read(), m.demo.loop.Frames())
	b.WriteString(renderTree(m.root, m.showAll))
	b.WriteString("\n\n")
	for _, line := range m.events.Lines() {
		b.WriteString(eventStyle.Render(line))
		b.WriteString("\n")
	}
	if m.typing {
		b.WriteString(modeStyle.Render(fmt.Sprintf("typing: %s_", m.typed)))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("1-4 prompts  e/f actions  x close  enter type  +/- counter  [/] bar  a announce  l loading  t hidden  q quit"))
	return b.String()
}
