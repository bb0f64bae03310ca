// Package tui is the interactive play assistant: the solver proposes guesses
// and the user types back the game's feedback pattern.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/wordlebot/internal/display"
	"github.com/lox/wordlebot/internal/feedback"
	"github.com/lox/wordlebot/internal/game"
	"github.com/lox/wordlebot/internal/words"
)

// ErrInterrupted is returned when the user quits mid-game.
var ErrInterrupted = errors.New("interrupted")

// GuessMsg asks the user for feedback on a proposed guess. Respond receives
// exactly one pattern, or is closed if the user quits.
type GuessMsg struct {
	Guess   words.Word
	Respond chan feedback.Feedback
}

// RoundMsg reports a completed round for the board.
type RoundMsg struct {
	Round game.Round
}

// DoneMsg reports the terminal game state.
type DoneMsg struct {
	Game *game.Game
	Err  error
}

type row struct {
	guess words.Word
	fb    feedback.Feedback
}

// Model is the Bubble Tea model for interactive play.
type Model struct {
	input  textinput.Model
	rows   []row
	status string

	pending *GuessMsg
	final   *DoneMsg

	quitting bool
}

// New creates the play model.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "bygbb"
	ti.CharLimit = words.Length
	ti.Focus()
	return Model{
		input:  ti,
		status: "waiting for the first guess",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GuessMsg:
		m.pending = &msg
		m.status = fmt.Sprintf("guess %s, enter the feedback pattern", msg.Guess)
		m.input.Reset()
		return m, nil

	case RoundMsg:
		m.rows = append(m.rows, row{guess: msg.Round.Guess, fb: msg.Round.Feedback})
		if msg.Round.Remaining > 1 {
			m.status = fmt.Sprintf("%d candidates remain", msg.Round.Remaining)
		}
		return m, nil

	case DoneMsg:
		m.final = &msg
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			if m.pending != nil {
				close(m.pending.Respond)
				m.pending = nil
			}
			return m, tea.Quit

		case tea.KeyEnter:
			if m.pending == nil {
				return m, nil
			}
			fb, err := feedback.Parse(m.input.Value())
			if err != nil {
				m.status = fmt.Sprintf("unable to parse %q, try again", m.input.Value())
				m.input.Reset()
				return m, nil
			}
			m.pending.Respond <- fb
			m.pending = nil
			m.status = "thinking..."
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(display.HeaderStyle.Render("wordlebot"))
	b.WriteString("\n\n")

	for _, r := range m.rows {
		b.WriteString(renderRow(r))
		b.WriteByte('\n')
	}

	if m.final != nil {
		switch {
		case m.final.Err != nil:
			b.WriteString(display.ErrorStyle.Render(fmt.Sprintf("\n%v\n", m.final.Err)))
		case m.final.Game.Status == game.Won:
			b.WriteString(display.SuccessStyle.Render(fmt.Sprintf("\nSolved in %d!\n", m.final.Game.WinningRound())))
		default:
			b.WriteString(display.ErrorStyle.Render("\nOut of tries, we lost!\n"))
		}
		return b.String()
	}

	b.WriteByte('\n')
	b.WriteString(display.InfoStyle.Render(m.status))
	b.WriteByte('\n')
	if m.pending != nil {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
	b.WriteString(display.InfoStyle.Render("b=miss y=present g=hit · esc to quit"))
	b.WriteByte('\n')
	return b.String()
}

func renderRow(r row) string {
	var cells []string
	for i := 0; i < words.Length; i++ {
		cell := fmt.Sprintf(" %c ", r.guess[i])
		switch r.fb[i] {
		case feedback.Hit:
			cells = append(cells, display.HitStyle.Render(cell))
		case feedback.Present:
			cells = append(cells, display.PresentStyle.Render(cell))
		default:
			cells = append(cells, display.MissStyle.Render(cell))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// Oracle bridges the controller, running in its own goroutine, to the TUI.
type Oracle struct {
	prog *tea.Program
}

// Feedback implements game.Oracle by asking the user via the TUI.
func (o *Oracle) Feedback(guess words.Word) (feedback.Feedback, error) {
	respond := make(chan feedback.Feedback, 1)
	o.prog.Send(GuessMsg{Guess: guess, Respond: respond})
	fb, ok := <-respond
	if !ok {
		return feedback.Feedback{}, ErrInterrupted
	}
	return fb, nil
}

// result extracts the outcome the model collected from its DoneMsg. A final
// model without one means the user quit mid-game.
func (m Model) result() (*game.Game, error) {
	if m.final == nil {
		return nil, ErrInterrupted
	}
	return m.final.Game, m.final.Err
}

// Run plays one interactive game through the TUI and returns its outcome.
// The controller is built here so completed rounds land on the board. The
// finished game travels through DoneMsg and is read back off the final model,
// so the controller goroutine and this caller never share variables.
func Run(cfg game.Config, universe, pool []words.Word) (*game.Game, error) {
	prog := tea.NewProgram(New())
	cfg.OnRound = func(r game.Round) {
		prog.Send(RoundMsg{Round: r})
	}
	ctrl := game.NewController(cfg)

	go func() {
		g, err := ctrl.Play(universe, pool, &Oracle{prog: prog})
		prog.Send(DoneMsg{Game: g, Err: err})
	}()

	final, err := prog.Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).result()
}
