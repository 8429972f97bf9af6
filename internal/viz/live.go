package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/sim"
)

const (
	plotWidth       = 72
	plotHeight      = 16
	historyCapacity = 120
	tickInterval    = time.Second / 30
)

type TickMsg time.Time

// Model animates a run in the terminal. Every tick it emits the current
// profile to the sink and advances, exactly like sim.Runner, stepsPerTick
// times. A nil sink makes the model display only; reset is available only
// then, so an attached sink always sees frames in step order.
type Model struct {
	stepper      *lax.Stepper
	sink         sim.Sink
	initial      lax.Grid
	total        int
	frame        int
	stepsPerTick int
	running      bool
	err          error
	massHistory  []float64
	title        string
}

// NewModel starts running at frame 0. total is the number of frames to emit.
func NewModel(st *lax.Stepper, sink sim.Sink, total int, title string) Model {
	return Model{
		stepper:      st,
		sink:         sink,
		initial:      st.Current().Clone(),
		total:        total,
		stepsPerTick: 1,
		running:      true,
		massHistory:  make([]float64, 0, historyCapacity),
		title:        title,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "+", "=":
			m.stepsPerTick = min(m.stepsPerTick*2, 1024)
		case "-", "_":
			m.stepsPerTick = max(m.stepsPerTick/2, 1)
		}
	case TickMsg:
		if m.running && !m.done() {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) done() bool {
	return m.err != nil || m.frame >= m.total
}

// step emits and advances up to stepsPerTick times.
func (m *Model) step() {
	for i := 0; i < m.stepsPerTick && !m.done(); i++ {
		if m.sink != nil {
			if err := m.sink.WriteFrame(m.frame, m.stepper.Current()); err != nil {
				m.err = err
				return
			}
		}
		m.stepper.Advance()
		m.frame++
	}
	mass := m.stepper.Current().Sum()
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return
	}
	m.massHistory = append(m.massHistory, mass)
	if len(m.massHistory) > historyCapacity {
		m.massHistory = m.massHistory[1:]
	}
}

// canReset reports whether the run may be rewound.
func (m *Model) canReset() bool {
	return m.sink == nil && m.err == nil
}

func (m *Model) reset() {
	if !m.canReset() {
		return
	}
	if err := m.stepper.Reset(m.initial); err != nil {
		m.err = err
		return
	}
	m.frame = 0
	m.massHistory = m.massHistory[:0]
}

// Frame returns the number of frames emitted so far.
func (m Model) Frame() int { return m.frame }

func (m Model) Err() error { return m.err }

func (m Model) View() string {
	g := m.stepper.Current()

	caption := fmt.Sprintf("u(j) at t=%d", m.stepper.Steps())
	var plot string
	if g.IsFinite() {
		plot = asciigraph.Plot(g, asciigraph.Height(plotHeight), asciigraph.Width(plotWidth), asciigraph.Caption(caption))
	} else {
		plot = statusFailed.Render("field is no longer finite")
	}

	status := statusRunning.Render("RUNNING")
	switch {
	case m.err != nil:
		status = statusFailed.Render("FAILED: " + m.err.Error())
	case m.done():
		status = statusDone.Render("DONE")
	case !m.running:
		status = statusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", m.frame, m.total)) + "\n")
	s.WriteString(progressBar(float64(m.frame)/float64(max(m.total, 1)), 24) + "\n")
	s.WriteString(labelStyle.Render("Courant") + valueStyle.Render(fmt.Sprintf("%.4f", m.stepper.Courant())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%d/tick", m.stepsPerTick)) + "\n")
	s.WriteString(labelStyle.Render("Max |u|") + valueStyle.Render(fmt.Sprintf("%.6f", g.MaxAbs())) + "\n")
	s.WriteString(labelStyle.Render("Peak") + valueStyle.Render(fmt.Sprintf("%d", g.ArgMax())) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.6f", g.Sum())) + "\n")
	s.WriteString(sparkline(m.massHistory, 24) + "\n")
	help := "SP:Pause Q:Quit\n+/-:Speed"
	if m.canReset() {
		help = "SP:Pause R:Reset Q:Quit\n+/-:Speed"
	}
	s.WriteString(helpStyle.Render(help))

	return lipgloss.JoinHorizontal(lipgloss.Top, graphStyle.Render(plot), statsStyle.Render(s.String()))
}
