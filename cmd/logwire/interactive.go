package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tracekit/logwire/render"
	"github.com/tracekit/logwire/stream"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewerModel struct {
	err      error
	filename string
	records  []*render.Record
	visible  []int
	filter   textinput.Model
	selected int
	detail   bool
	height   int
}

type recordsLoadedMsg struct {
	err     error
	records []*render.Record
}

func newViewerModel(filename string) *viewerModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/"
	ti.Width = 32

	return &viewerModel{
		filename: filename,
		filter:   ti,
		height:   24,
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *viewerModel) loadRecords() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	defer f.Close()

	r, err := stream.NewReader(f)
	if err != nil {
		return recordsLoadedMsg{err: err}
	}
	defer r.Close()

	var records []*render.Record
	for {
		frame, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		rec, _, err := render.DecodeRecord(frame)
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		records = append(records, rec)
	}
	return recordsLoadedMsg{records: records}
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case recordsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.applyFilter()

	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			m.detail = !m.detail

		case "esc":
			m.detail = false

		case "/":
			m.filter.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

// applyFilter recomputes the visible record indices from the filter text,
// matching against level, module and message.
func (m *viewerModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, rec := range m.records {
		if needle == "" ||
			strings.Contains(rec.Level.String(), needle) ||
			strings.Contains(strings.ToLower(rec.Module), needle) ||
			strings.Contains(strings.ToLower(rec.Message), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *viewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("logwire " + m.filename))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if m.detail && m.selected < len(m.visible) {
		rec := m.records[m.visible[m.selected]]
		b.WriteString(levelStyles[rec.Level].Render(strings.ToUpper(rec.Level.String())))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("target: %s", rec.Target)))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("module: %s", rec.Module)))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("source: %s:%d", rec.File, rec.Line)))
		b.WriteString("\n\n")
		b.WriteString(rec.Message)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc: back  q: quit"))
		b.WriteString("\n")
		return b.String()
	}

	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}

	for i := start; i < len(m.visible) && i < start+rows; i++ {
		rec := m.records[m.visible[i]]
		line := fmt.Sprintf("%-5s %-14s %s", strings.ToUpper(rec.Level.String()), rec.Module, rec.Message)
		if i == m.selected {
			line = selectedStyle.Render(line)
		} else {
			line = levelStyles[rec.Level].Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("no records match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move  enter: detail  /: filter  q: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newViewerModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
