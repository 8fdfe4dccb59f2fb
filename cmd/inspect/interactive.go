package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/polyvalue/poly/boxed"
	"github.com/polyvalue/poly/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	shapeStyle = lipgloss.NewStyle().
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

type modelState int

const (
	stateList modelState = iota
	stateNewShape
	stateShowResult
)

type rowInfo struct {
	handle table.Handle
	label  string
	area   float64
}

type inspectModel struct {
	err      error
	tbl      *table.Table[Shape]
	counter  *table.Counter
	rows     []rowInfo
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

func newInspectModel(tbl *table.Table[Shape], counter *table.Counter) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "circle 2.5  |  rect 3 4"
	ti.Prompt = "shape: "
	ti.Width = 40

	m := &inspectModel{
		tbl:     tbl,
		counter: counter,
		input:   ti,
		state:   stateList,
	}
	m.refresh()
	return m
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the row snapshot from the table.
func (m *inspectModel) refresh() {
	m.rows = m.rows[:0]
	m.tbl.Each(func(h table.Handle, s Shape) bool {
		m.rows = append(m.rows, rowInfo{handle: h, label: describe(s), area: s.Area()})
		return true
	})
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateNewShape && msg.String() == "q" {
				break
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.rows)-1 {
				m.selected++
			}

		case "d":
			if m.state == stateList {
				m.duplicateSelected()
			}

		case "x":
			if m.state == stateList {
				m.dropSelected()
			}

		case "c":
			if m.state == stateList {
				m.castSelected()
			}

		case "n":
			if m.state == stateList {
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateNewShape
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateNewShape:
				m.addShape(m.input.Value())
				m.input.Blur()
				if m.err == nil {
					m.state = stateList
				} else {
					m.state = stateShowResult
				}
			case stateShowResult:
				m.state = stateList
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateNewShape:
				m.input.Blur()
				m.state = stateList
			case stateShowResult:
				m.state = stateList
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateNewShape {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) duplicateSelected() {
	if len(m.rows) == 0 {
		return
	}
	h := m.rows[m.selected].handle
	nh, err := m.tbl.Duplicate(h)
	if err != nil {
		m.err = err
		m.state = stateShowResult
		return
	}
	m.result = fmt.Sprintf("duplicated #%d into #%d", h, nh)
	m.state = stateShowResult
	m.refresh()
}

func (m *inspectModel) dropSelected() {
	if len(m.rows) == 0 {
		return
	}
	m.tbl.Drop(m.rows[m.selected].handle)
	m.refresh()
}

// castSelected pulls the selected box out, attempts a checked downcast to
// Named on a clone, and puts the original back.
func (m *inspectModel) castSelected() {
	if len(m.rows) == 0 {
		return
	}
	h := m.rows[m.selected].handle
	b, ok := m.tbl.Remove(h)
	if !ok {
		return
	}

	named, err := boxed.DynamicCast[Named](b)
	switch {
	case err != nil:
		m.result = fmt.Sprintf("cast of #%d failed: %v", h, err)
	case named.Empty():
		m.result = fmt.Sprintf("#%d is not Named", h)
	default:
		m.result = fmt.Sprintf("#%d as Named: %q", h, named.Get().Name())
		named.Destroy()
	}

	if _, err := m.tbl.Insert(&b); err != nil {
		m.err = err
	}
	m.state = stateShowResult
	m.refresh()
}

func (m *inspectModel) addShape(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		m.err = fmt.Errorf("empty shape description")
		return
	}

	var (
		b   boxed.Ptr[Shape]
		err error
	)
	switch fields[0] {
	case "circle":
		if len(fields) != 2 {
			err = fmt.Errorf("usage: circle <radius>")
			break
		}
		r, perr := strconv.ParseFloat(fields[1], 64)
		if perr != nil {
			err = perr
			break
		}
		b, err = boxed.Make[Shape](Circle{Radius: r})
	case "rect":
		if len(fields) != 3 {
			err = fmt.Errorf("usage: rect <w> <h>")
			break
		}
		w, werr := strconv.ParseFloat(fields[1], 64)
		h, herr := strconv.ParseFloat(fields[2], 64)
		if werr != nil || herr != nil {
			err = fmt.Errorf("bad dimensions %q %q", fields[1], fields[2])
			break
		}
		b, err = boxed.Make[Shape](Rect{W: w, H: h})
	default:
		err = fmt.Errorf("unknown shape %q (circle, rect)", fields[0])
	}
	if err != nil {
		m.err = err
		return
	}

	if _, err := m.tbl.Insert(&b); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Box Inspector"))
	b.WriteString(fmt.Sprintf("  live=%d\n\n", m.counter.Live()))

	switch m.state {
	case stateList:
		if len(m.rows) == 0 {
			b.WriteString("No boxes. Press n to add one.\n")
		}
		for i, row := range m.rows {
			line := fmt.Sprintf("%s %s area=%.2f",
				handleStyle.Render(fmt.Sprintf("#%-3d", row.handle)),
				shapeStyle.Render(fmt.Sprintf("%-24s", row.label)),
				row.area)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • d duplicate • x drop • c cast • n new • q quit"))

	case stateNewShape:
		b.WriteString("Add a shape:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter add • esc back"))

	case stateShowResult:
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

func runInteractive(tbl *table.Table[Shape], counter *table.Counter) error {
	p := tea.NewProgram(newInspectModel(tbl, counter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
