package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EnergyReader fetches one telemetry reading. Each call is a complete
// single-shot exchange with the plug over a fresh connection; the watch
// view never holds a connection open between polls.
type EnergyReader func() (map[string]any, error)

// readingMsg carries the outcome of one poll.
type readingMsg struct {
	reading map[string]any
	err     error
}

// pollMsg triggers the next poll after the configured interval.
type pollMsg struct{}

// WatchModel is the bubbletea model for the live energy view.
type WatchModel struct {
	addr     string
	read     EnergyReader
	interval time.Duration
	spin     spinner.Model
	reading  map[string]any
	err      error
	updated  time.Time
	waiting  bool
}

// NewWatchModel creates a watch model polling read every interval.
func NewWatchModel(addr string, read EnergyReader, interval time.Duration) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	return WatchModel{
		addr:     addr,
		read:     read,
		interval: interval,
		spin:     s,
		waiting:  true,
	}
}

// Init implements tea.Model
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m WatchModel) fetch() tea.Cmd {
	read := m.read
	return func() tea.Msg {
		reading, err := read()
		return readingMsg{reading: reading, err: err}
	}
}

// Update implements tea.Model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case readingMsg:
		m.waiting = false
		m.err = msg.err
		if msg.err == nil {
			m.reading = msg.reading
			m.updated = time.Now()
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return pollMsg{} })

	case pollMsg:
		m.waiting = true
		return m, m.fetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m WatchModel) View() string {
	var lines []string

	header := TitleStyle.Render("ENERGY METER") + MutedStyle.Render("  "+m.addr)
	lines = append(lines, header, "")

	switch {
	case m.err != nil:
		lines = append(lines, ErrorStyle.Render("✗ "+m.err.Error()))
	case m.reading == nil:
		lines = append(lines, m.spin.View()+MutedStyle.Render(" waiting for first reading..."))
	default:
		lines = append(lines,
			meterRow("Voltage", m.reading["voltage"], "V"),
			meterRow("Current", m.reading["current"], "A"),
			meterRow("Power", m.reading["power"], "W"),
			meterRow("Total", m.reading["total"], "Wh"),
			"",
		)
		status := MutedStyle.Render("updated " + m.updated.Format("15:04:05"))
		if m.waiting {
			status = m.spin.View() + status
		} else {
			status = "  " + status
		}
		lines = append(lines, status)
	}

	lines = append(lines, "", MutedStyle.Render("q to quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0, 2).
		Width(GetTerminalWidth() - 2).
		Render(strings.Join(lines, "\n"))

	return box + "\n"
}

// meterRow formats one telemetry quantity. Readings are reconciled to
// carry base units for every quantity the plug reported; a quantity the
// plug omitted renders as a dash.
func meterRow(label string, v any, unit string) string {
	value := "—"
	if f, ok := v.(float64); ok {
		value = fmt.Sprintf("%.3f %s", f, unit)
	}
	return "  " + LabelStyle.Render(fmt.Sprintf("%-9s", label+":")) + ValueStyle.Render(value)
}

// RunWatch runs the live energy view until the user quits.
func RunWatch(addr string, read EnergyReader, interval time.Duration) error {
	_, err := tea.NewProgram(NewWatchModel(addr, read, interval)).Run()
	return err
}
