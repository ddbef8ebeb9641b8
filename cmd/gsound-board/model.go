package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GNOME/gsound"
)

// itemStatus is the playback state shown next to a board entry.
type itemStatus int

const (
	statusIdle itemStatus = iota
	statusPending
	statusDone
	statusCanceled
	statusFailed
)

// item is one playable entry on the board.
type item struct {
	label  string
	attrs  *gsound.Proplist
	status itemStatus
	errMsg string
}

// playDoneMsg carries a resolved play result back onto the tea event loop.
// Completion callbacks arrive on an engine goroutine; funneling them through
// a message keeps all model mutation on the program's own loop.
type playDoneMsg struct {
	index int
	err   error
}

// Model is the Bubbletea model for the sound board.
type Model struct {
	snd   *gsound.Context
	items []item

	cursor   int
	keys     KeyMap
	help     help.Model
	styles   Styles
	width    int
	height   int
	quitting bool

	// cancels holds the cancellation function of each in-flight play,
	// keyed by item index.
	cancels map[int]context.CancelFunc
}

// NewModel creates the board model over an initialized sound context.
func NewModel(snd *gsound.Context, items []item) Model {
	return Model{
		snd:     snd,
		items:   items,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		cancels: make(map[int]context.CancelFunc),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case playDoneMsg:
		return m.handlePlayDone(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Play):
		return m, m.playCurrent()
	case key.Matches(msg, m.keys.Cancel):
		m.cancelCurrent()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		for _, cancel := range m.cancels {
			cancel()
		}
		return m, tea.Quit
	}
	return m, nil
}

// playCurrent starts the selected entry and returns a command that waits for
// its resolution. One play per entry at a time.
func (m *Model) playCurrent() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	i := m.cursor
	if m.items[i].status == statusPending {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancels[i] = cancel
	p := m.snd.PlayFullProps(ctx, m.items[i].attrs)

	m.items[i].status = statusPending
	m.items[i].errMsg = ""
	return waitForPlay(i, p)
}

// cancelCurrent asks the engine to cancel the selected entry's play. The
// entry stays pending until the resolution arrives through the completion
// path; cancellation is advisory.
func (m *Model) cancelCurrent() {
	if cancel, ok := m.cancels[m.cursor]; ok {
		cancel()
	}
}

func (m Model) handlePlayDone(msg playDoneMsg) (tea.Model, tea.Cmd) {
	if cancel, ok := m.cancels[msg.index]; ok {
		cancel()
		delete(m.cancels, msg.index)
	}

	it := &m.items[msg.index]
	var gerr *gsound.Error
	switch {
	case msg.err == nil:
		it.status = statusDone
	case errors.As(msg.err, &gerr) && gerr.Code == gsound.CodeCanceled:
		it.status = statusCanceled
	default:
		it.status = statusFailed
		it.errMsg = msg.err.Error()
	}
	return m, nil
}

// waitForPlay blocks on the pending operation and reposts its result as a
// message.
func waitForPlay(index int, p *gsound.PendingPlay) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		return playDoneMsg{index: index, err: p.Err()}
	}
}
