package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stride"
	"github.com/san-kum/stride/internal/demo"
	"github.com/san-kum/stride/internal/viz"
)

const historyCapacity = 200

type TickMsg time.Time

// Model advances one step attempt per tick and renders the traversal
// state.
type Model struct {
	walker     stride.Walker
	prof       demo.Profile
	errorScale float64

	sizes     []float64
	old       float64
	lastStep  *stride.Step
	lastErr   float64
	attempts  int
	accepted  int
	done      bool
	failed    error
	paused    bool
}

func NewModel(w stride.Walker, prof demo.Profile, errorScale float64) Model {
	if errorScale <= 0 {
		errorScale = 1
	}
	return Model{
		walker:     w,
		prof:       prof,
		errorScale: errorScale,
		old:        math.NaN(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case TickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) advance() {
	step, err := m.walker.Next()
	if err != nil {
		m.failed = err
		m.done = true
		return
	}
	if step == nil {
		m.done = true
		return
	}
	if math.IsNaN(m.old) {
		m.old = m.prof(step.Begin())
	}
	v := m.prof(step.End())
	e := math.Abs(v-m.old) / m.errorScale
	ok := step.Succeeded(stride.WithValue(v), stride.WithError(e))

	m.lastStep = step
	m.lastErr = e
	m.attempts++
	if ok {
		m.accepted++
		m.old = v
	}
	m.sizes = append(m.sizes, step.Size())
	if len(m.sizes) > historyCapacity {
		m.sizes = m.sizes[1:]
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("stride live") + "\n")

	start, stop, cur := m.walker.Start(), m.walker.Stop(), m.walker.Current()
	if !math.IsInf(stop, 1) {
		progress := (cur - start) / (stop - start)
		b.WriteString(viz.ProgressBar(progress, 60) + fmt.Sprintf(" %.1f%%\n\n", progress*100))
	}

	row := func(label, value string) {
		b.WriteString(viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value) + "\n")
	}
	row("position", fmt.Sprintf("%g", cur))
	if m.lastStep != nil {
		row("last step", fmt.Sprintf("[%g, %g]", m.lastStep.Begin(), m.lastStep.End()))
		row("last size", fmt.Sprintf("%g", m.lastStep.Size()))
		row("last error", fmt.Sprintf("%.3g", m.lastErr))
	}
	row("retries here", fmt.Sprintf("%d", m.walker.Retries()))
	row("attempts", fmt.Sprintf("%d", m.attempts))
	row("accepted", fmt.Sprintf("%d", m.accepted))

	if len(m.sizes) > 1 {
		graph := asciigraph.Plot(m.sizes,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("recent step sizes"),
		)
		b.WriteString(viz.GraphStyle.Render(graph) + "\n")
	}

	switch {
	case m.failed != nil:
		b.WriteString(viz.BadStyle.Render(m.failed.Error()) + "\n")
	case m.done:
		b.WriteString(viz.GoodStyle.Render("traversal complete") + "\n")
	}

	b.WriteString(viz.HelpStyle.Render("space pause · q quit"))
	return viz.PanelStyle.Render(b.String())
}

// Run blocks until the live view exits.
func Run(w stride.Walker, prof demo.Profile, errorScale float64) error {
	p := tea.NewProgram(NewModel(w, prof, errorScale))
	_, err := p.Run()
	return err
}
