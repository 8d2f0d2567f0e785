package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheikhrachel/game-of-colors/driver"
	"github.com/sheikhrachel/game-of-colors/rules"
)

// statusLines is the number of lines View prints below the grid
const statusLines = 2

// TickMsg is sent to trigger a simulation tick
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given interval
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model that paces a driver and draws its grid
type Model struct {
	driver   *driver.Driver
	palette  *Palette
	interval time.Duration
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a model ticking d at its configured rate
func NewModel(d *driver.Driver, palette *Palette) Model {
	if palette == nil {
		palette = NewPalette(nil)
	}
	return Model{
		driver:   d,
		palette:  palette,
		interval: d.Config().TickInterval(),
	}
}

// Init starts the tick loop
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles key presses and ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if !m.paused {
			m.tick()
		}
		if m.err != nil {
			return m, tea.Quit
		}
		return m, tickCmd(m.interval)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "n":
		if m.paused {
			m.tick()
		}
	case "r":
		m.err = m.driver.Reset(m.driver.Seed())
	case "s":
		m.err = m.driver.Reset(time.Now().UnixNano())
	}

	if m.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) tick() {
	if err := m.driver.Tick(); err != nil {
		m.err = err
	}
}

// Err returns the error that stopped the model, if any
func (m Model) Err() error {
	return m.err
}

// Paused reports whether ticks are suspended
func (m Model) Paused() bool {
	return m.paused
}

// View renders the grid and a status line
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.driver.Snapshot()
	pop := snap.Population()
	stats := m.driver.Stats()

	state := "running"
	if m.paused {
		state = "paused"
	}

	var sb strings.Builder
	sb.WriteString(m.palette.Render(snap))
	sb.WriteRune('\n')
	sb.WriteString(m.palette.Status(fmt.Sprintf(
		"gen %d | red %d green %d blue %d white %d | %.1f gen/s | seed %d | %s",
		snap.Generation, pop[rules.Red], pop[rules.Green], pop[rules.Blue], pop[rules.White],
		stats.GenerationsPerSecond, m.driver.Seed(), state,
	)))
	sb.WriteRune('\n')
	sb.WriteString(m.palette.Status("space pause  n step  r reset  s reseed  q quit"))
	return sb.String()
}

// Run starts a Bubble Tea program for d and blocks until the user quits
func Run(d *driver.Driver) error {
	p := tea.NewProgram(NewModel(d, nil), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
