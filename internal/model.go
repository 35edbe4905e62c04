package internal

import (
	"log"

	"pomodoro_tui/internal/alert"
	"pomodoro_tui/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgTick is delivered by the ticker while the countdown runs. Gen
// identifies the run that produced it.
type MsgTick struct {
	Gen uint64
}

// Scheduler arms and cancels the periodic tick.
type Scheduler interface {
	Start() uint64
	Stop()
	Running() bool
}

type Model struct {
	Engine *timer.Engine
	Alert  alert.Sink
	Ticks  Scheduler
	Err    error

	tickGen uint64
	width   int
	height  int
}

func NewModel(engine *timer.Engine, sink alert.Sink, ticks Scheduler) *Model {
	if sink == nil {
		sink = alert.Nop{}
	}
	return &Model{
		Engine: engine,
		Alert:  sink,
		Ticks:  ticks,
		width:  80,
		height: 24,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.handleTick(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	return m.mainView()
}

func (m *Model) handleTick(msg MsgTick) {
	// Ticks queued before a pause or from an earlier run are stale.
	if !m.Engine.Running() || msg.Gen != m.tickGen {
		return
	}
	if m.Engine.Tick().Has(timer.EffectPhaseChanged) {
		log.Printf("phase changed to %s", m.Engine.State().Phase)
		m.alert(m.Alert.Play)
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.Engine.IncrementSession()
	case "down", "j":
		m.Engine.DecrementSession()
	case "right", "l":
		m.Engine.IncrementRest()
	case "left", "h":
		m.Engine.DecrementRest()
	case "enter", " ":
		m.StartStop()
	case "r":
		m.Reset()
	}
	return m, nil
}

// StartStop toggles the countdown and arms or cancels the ticker to match.
func (m *Model) StartStop() {
	m.Engine.StartStop()
	if m.Engine.Running() {
		m.tickGen = m.Ticks.Start()
		return
	}
	m.Ticks.Stop()
}

func (m *Model) Reset() {
	m.Ticks.Stop()
	if m.Engine.Reset().Has(timer.EffectAlertReset) {
		m.alert(m.Alert.Pause)
		m.alert(m.Alert.Rewind)
	}
}

func (m *Model) alert(op func() error) {
	if err := op(); err != nil {
		log.Printf("alert: %v", err)
		m.Err = err
	}
}

func (m *Model) Close() error {
	if m.Ticks.Running() {
		m.Ticks.Stop()
	}
	return m.Alert.Pause()
}
