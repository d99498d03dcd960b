package quiz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/question"
)

// View renders the quiz screen.
func (m Model) View() string {
	if m.done {
		return lipgloss.JoinVertical(lipgloss.Left,
			stylize("No more questions available.", m.noColor, lipgloss.Color("33")),
			renderScore(m.score, m.noColor),
			"",
		)
	}
	if !m.active {
		return ""
	}
	sections := []string{
		renderHeader(m, m.noColor),
		"",
		lipgloss.NewStyle().Bold(!m.noColor).Render(m.current.Question),
		"",
		renderChoices(m),
		"",
	}
	if m.warning != "" {
		sections = append(sections, stylize(m.warning, m.noColor, lipgloss.Color("214")))
	}
	if m.outcome != nil {
		sections = append(sections, FormatOutcome(*m.outcome, m.noColor))
	}
	sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the progress line.
func renderHeader(m Model, noColor bool) string {
	line := fmt.Sprintf("Question %d | Remaining: %d | Score: %d/%d",
		m.session.Drawn(), m.session.Remaining(), m.score.Correct, m.score.Answered)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderChoices renders the four options with cursor and selection marks.
func renderChoices(m Model) string {
	lines := make([]string, 0, len(question.Keys))
	for i, k := range question.Keys {
		pointer := "  "
		if i == m.cursor && m.outcome == nil {
			pointer = "> "
		}
		mark := "( )"
		if k == m.selected {
			mark = "(•)"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s) %s", pointer, mark, k.Upper(), m.current.Choices[k]))
	}
	return strings.Join(lines, "\n")
}

// FormatOutcome renders grading feedback, shared with plain output.
func FormatOutcome(outcome question.Outcome, noColor bool) string {
	switch outcome.Verdict {
	case question.Correct:
		return stylize("Correct! That's the right answer.", noColor, lipgloss.Color("42"))
	case question.Incorrect:
		return stylize(fmt.Sprintf("Incorrect. The correct answer was: %s) %s",
			outcome.CorrectKey.Upper(), outcome.CorrectText), noColor, lipgloss.Color("196"))
	default:
		return stylize("Please select an answer before submitting.", noColor, lipgloss.Color("214"))
	}
}

// renderScore renders the final tally.
func renderScore(score Score, noColor bool) string {
	return stylize(FormatScore(score), noColor, lipgloss.Color("244"))
}

// FormatScore renders a score as "Score: x/y".
func FormatScore(score Score) string {
	return fmt.Sprintf("Score: %d/%d", score.Correct, score.Answered)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
