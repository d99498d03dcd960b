package question

// Verdict is the result category of grading a submission.
type Verdict int

const (
	// NoAnswerSelected means nothing was submitted, so nothing was compared.
	NoAnswerSelected Verdict = iota
	// Correct means the submitted key matched the answer.
	Correct
	// Incorrect means the submitted key did not match the answer.
	Incorrect
)

// String returns a lowercase label for the verdict.
func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "no_answer"
	}
}

// Outcome is the graded result of one submission.
// CorrectKey and CorrectText are set only for Incorrect.
type Outcome struct {
	Verdict     Verdict
	CorrectKey  ChoiceKey
	CorrectText string
}

// Check grades a submitted key against the record's answer.
// The comparison is exact; callers normalize input with ParseChoiceKey.
func Check(r Record, submitted ChoiceKey) Outcome {
	if submitted == "" {
		return Outcome{Verdict: NoAnswerSelected}
	}
	if submitted == r.Answer {
		return Outcome{Verdict: Correct}
	}
	return Outcome{
		Verdict:     Incorrect,
		CorrectKey:  r.Answer,
		CorrectText: r.AnswerText(),
	}
}
