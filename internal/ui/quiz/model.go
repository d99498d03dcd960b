// Package quiz is the interactive terminal front end for taking a quiz.
package quiz

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quizbank/internal/draw"
	"quizbank/internal/question"
)

// Options configures the quiz model.
type Options struct {
	NoColor bool
	// Limit stops the quiz after this many questions; 0 means no limit.
	Limit int
}

// Score tallies graded answers.
type Score struct {
	Answered int
	Correct  int
}

// Model renders one question at a time from a draw session.
type Model struct {
	session  *draw.Session
	current  question.Record
	active   bool
	cursor   int
	selected question.ChoiceKey
	outcome  *question.Outcome
	warning  string
	score    Score
	limit    int
	done     bool
	quitting bool
	noColor  bool
	keys     keyMap
	help     help.Model
}

// NewModel constructs a quiz model and draws the first question.
func NewModel(session *draw.Session, opts Options) Model {
	m := Model{
		session: session,
		limit:   opts.Limit,
		noColor: opts.NoColor,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	return m.advance()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.done {
		return m, tea.Quit
	}
	if m.outcome != nil {
		if key.Matches(msg, m.keys.Submit, m.keys.Select) {
			m = m.advance()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(question.Keys)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selected = question.Keys[m.cursor]
		m.warning = ""
	case key.Matches(msg, m.keys.Choose):
		picked := question.ChoiceKey(msg.String())
		m.selected = picked
		m.cursor = keyIndex(picked)
		m.warning = ""
	case key.Matches(msg, m.keys.Submit):
		m = m.submit()
	}
	return m, nil
}

// submit grades the current selection.
func (m Model) submit() Model {
	outcome := question.Check(m.current, m.selected)
	if outcome.Verdict == question.NoAnswerSelected {
		m.warning = "Please select an answer before submitting."
		return m
	}
	m.score.Answered++
	if outcome.Verdict == question.Correct {
		m.score.Correct++
	}
	m.outcome = &outcome
	m.warning = ""
	return m
}

// advance draws the next question or finishes the quiz.
func (m Model) advance() Model {
	m.outcome = nil
	m.selected = ""
	m.cursor = 0
	m.warning = ""
	if m.limit > 0 && m.session.Drawn() >= m.limit {
		m.finish()
		return m
	}
	record, err := m.session.Next()
	if errors.Is(err, draw.ErrExhausted) {
		m.finish()
		return m
	}
	m.current = record
	m.active = true
	return m
}

func (m *Model) finish() {
	m.active = false
	m.current = question.Record{}
	m.done = true
}

// Current returns the question on screen, if any.
func (m Model) Current() (question.Record, bool) {
	return m.current, m.active
}

// Score returns the tally so far.
func (m Model) Score() Score {
	return m.score
}

// Done reports whether every question has been served.
func (m Model) Done() bool {
	return m.done
}

// Quitting reports whether the user left before the quiz finished.
func (m Model) Quitting() bool {
	return m.quitting
}

func keyIndex(k question.ChoiceKey) int {
	for i, known := range question.Keys {
		if known == k {
			return i
		}
	}
	return 0
}
