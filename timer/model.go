package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/store"
)

// persistInterval is how many ticks pass between snapshots of the
// running timer, to facilitate recovery on sudden shutdowns.
const persistInterval = 60

// StateStore persists timer snapshots for crash recovery.
type StateStore interface {
	SaveTimerState(state store.TimerState) error
	ClearTimerState() error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type keymap struct {
	stop key.Binding
}

var keys = keymap{
	stop: key.NewBinding(
		key.WithKeys("q", "enter", "ctrl+c"),
		key.WithHelp("q/enter", "stop and save"),
	),
}

var (
	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// Model drives the live timer display. The scheduled tick is the only
// recurring work and dies with the program.
type Model struct {
	timer *Timer
	state StateStore
	ticks int
}

// NewModel wraps a started timer in a bubbletea model.
func NewModel(t *Timer, state StateStore) Model {
	return Model{
		timer: t,
		state: state,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.timer.Tick()
		m.ticks++

		_ = m.timer.writeStatusFile()

		// snapshot once a minute so a crashed session can be
		// recovered into an entry on the next run
		if m.state != nil && m.ticks%persistInterval == 0 {
			_ = m.state.SaveTimerState(store.TimerState{
				Task:       m.timer.Task,
				Project:    m.timer.Project,
				EmployeeID: m.timer.EmployeeID,
				StartTime:  m.timer.StartTime,
				SavedAt:    time.Now(),
			})
		}

		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, keys.stop) {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) View() string {
	elapsed := elapsedStyle.Render(
		timeutil.FormatSeconds(m.timer.Elapsed()),
	)

	task := taskStyle.Render(
		"[" + m.timer.Project + "] " + m.timer.Task,
	)

	help := helpStyle.Render("press q or enter to stop and save")

	return "\n  " + task + "\n\n  " + elapsed + "\n\n  " + help + "\n"
}

// Run starts the timer, displays it until the user stops it, and
// returns the final duration in seconds. The status file and any
// persisted snapshot are cleared before returning.
func Run(t *Timer, state StateStore) (int, error) {
	if err := t.Start(); err != nil {
		return 0, err
	}

	_, err := tea.NewProgram(NewModel(t, state)).Run()
	if err != nil {
		return 0, err
	}

	removeStatusFile()

	if state != nil {
		_ = state.ClearTimerState()
	}

	return t.Stop()
}
