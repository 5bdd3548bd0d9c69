// Package tui is the terminal client for playing showdown matches.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumyn/showdown/internal/client"
	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/room"
)

const (
	pollEvery      = time.Second
	requestTimeout = 5 * time.Second
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	lossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	drawStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

type screen int

const (
	screenJoin screen = iota
	screenGame
)

type (
	joinedMsg room.JoinResponse
	stateMsg  room.State
	tickMsg   time.Time
	errMsg    struct{ err error }
)

// Model is the bubbletea model for the whole client session.
type Model struct {
	api *client.Client

	screen    screen
	roomInput textinput.Model
	passInput textinput.Model
	focus     int

	seat  room.JoinResponse
	state room.State
	err   error
}

func NewModel(api *client.Client) Model {
	roomInput := textinput.New()
	roomInput.Placeholder = "room name"
	roomInput.CharLimit = 64
	roomInput.Focus()

	passInput := textinput.New()
	passInput.Placeholder = "passcode (optional)"
	passInput.CharLimit = 64
	passInput.EchoMode = textinput.EchoPassword

	return Model{
		api:       api,
		screen:    screenJoin,
		roomInput: roomInput,
		passInput: passInput,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case joinedMsg:
		m.seat = room.JoinResponse(msg)
		m.screen = screenGame
		m.err = nil
		return m, tea.Batch(m.pollState(), tick())

	case stateMsg:
		m.state = room.State(msg)
		m.err = nil
		return m, nil

	case tickMsg:
		if m.screen != screenGame {
			return m, nil
		}
		return m, tea.Batch(m.pollState(), tick())

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.screen == screenGame {
			m.leave()
		}
		return m, tea.Quit
	}

	if m.screen == screenJoin {
		return m.handleJoinKey(msg)
	}
	return m.handleGameKey(msg)
}

func (m Model) handleJoinKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = (m.focus + 1) % 2
		if m.focus == 0 {
			m.roomInput.Focus()
			m.passInput.Blur()
		} else {
			m.roomInput.Blur()
			m.passInput.Focus()
		}
		return m, nil

	case "enter":
		roomName := m.roomInput.Value()
		if roomName == "" {
			return m, nil
		}
		return m, m.join(roomName, m.passInput.Value())
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.roomInput, cmd = m.roomInput.Update(msg)
	} else {
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.leave()
		return m, tea.Quit

	case "r", "p", "s":
		if m.state.Phase != room.PhasePlaying || m.state.YouMoved {
			return m, nil
		}
		move := map[string]game.Move{
			"r": game.MoveRock,
			"p": game.MovePaper,
			"s": game.MoveScissors,
		}[msg.String()]
		return m, m.submitMove(move)

	case "n":
		if m.state.Phase != room.PhaseResolved {
			return m, nil
		}
		return m, m.rematch()
	}

	return m, nil
}

func (m Model) View() string {
	if m.screen == screenJoin {
		return m.viewJoin()
	}
	return m.viewGame()
}

func (m Model) viewJoin() string {
	view := titleStyle.Render("Showdown: Rock Paper Scissors") + "\n\n" +
		m.roomInput.View() + "\n" +
		m.passInput.View() + "\n" +
		helpStyle.Render("enter: join • tab: switch field • esc: quit")

	if m.err != nil {
		view += "\n" + errStyle.Render(m.err.Error())
	}

	return borderStyle.Render(view)
}

func (m Model) viewGame() string {
	st := m.state

	header := titleStyle.Render(fmt.Sprintf("Room %s", m.seat.Room)) + "  " +
		labelStyle.Render(fmt.Sprintf("you are %s • round %d", m.seat.Role, st.Round))

	score := labelStyle.Render(fmt.Sprintf("wins %d • losses %d • draws %d",
		st.YourWins, st.OpponentWins, st.Draws))

	var body string
	switch st.Phase {
	case room.PhaseWaiting:
		body = "Waiting for an opponent to join..."

	case room.PhasePlaying:
		switch {
		case st.YouMoved:
			body = fmt.Sprintf("You threw %s. Waiting for the opponent...", st.YourMove)
		case st.OpponentMoved:
			body = "The opponent has moved. Your turn!\n\n[r]ock  [p]aper  [s]cissors"
		default:
			body = "Make your move.\n\n[r]ock  [p]aper  [s]cissors"
		}

	case room.PhaseResolved:
		if st.Result != nil {
			body = fmt.Sprintf("You threw %s. The opponent threw %s.\n\n",
				st.Result.YourMove, st.Result.OpponentMove)
			switch st.Result.Outcome {
			case game.OutcomeWin:
				body += winStyle.Render("You WIN!")
			case game.OutcomeLoss:
				body += lossStyle.Render("You LOSE!")
			default:
				body += drawStyle.Render("It's a draw.")
			}
			body += "\n\n" + helpStyle.Render("[n] play again")
		}
	}

	view := header + "\n" + score + "\n\n" + body + "\n" +
		helpStyle.Render("q: leave room")

	if m.err != nil {
		view += "\n" + errStyle.Render(m.err.Error())
	}

	return borderStyle.Render(view)
}

func (m Model) join(roomName, passcode string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		joined, err := m.api.Join(ctx, roomName, passcode)
		if err != nil {
			return errMsg{err}
		}
		return joinedMsg(joined)
	}
}

func (m Model) pollState() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		state, err := m.api.State(ctx)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg(state)
	}
}

func (m Model) submitMove(move game.Move) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		state, err := m.api.Move(ctx, string(move))
		if err != nil {
			return errMsg{err}
		}
		return stateMsg(state)
	}
}

func (m Model) rematch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		state, err := m.api.Rematch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg(state)
	}
}

// leave is fire-and-forget on quit; the server's TTL janitor covers failures.
func (m Model) leave() {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	_ = m.api.Leave(ctx)
}

func tick() tea.Cmd {
	return tea.Tick(pollEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
