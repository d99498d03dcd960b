package question

// ChoiceKey labels one of the four answer options.
type ChoiceKey string

// The fixed choice keys, in display order.
const (
	KeyA ChoiceKey = "a"
	KeyB ChoiceKey = "b"
	KeyC ChoiceKey = "c"
	KeyD ChoiceKey = "d"
)

// Keys lists every valid choice key in display order.
var Keys = []ChoiceKey{KeyA, KeyB, KeyC, KeyD}

// Record is one multiple-choice question as persisted in the bank.
type Record struct {
	Question string               `json:"question" yaml:"question"`
	Choices  map[ChoiceKey]string `json:"choices" yaml:"choices"`
	Answer   ChoiceKey            `json:"answer" yaml:"answer"`
	ID       string               `json:"id,omitempty" yaml:"id,omitempty"`
}

// Document is the import format for question files authored by hand.
type Document struct {
	Questions []Record `json:"questions" yaml:"questions"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	if r.Choices != nil {
		out.Choices = make(map[ChoiceKey]string, len(r.Choices))
		for key, text := range r.Choices {
			out.Choices[key] = text
		}
	}
	return out
}

// AnswerText returns the text of the correct choice.
func (r Record) AnswerText() string {
	return r.Choices[r.Answer]
}

// Upper renders the key as shown to users, e.g. "B".
func (k ChoiceKey) Upper() string {
	switch k {
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyC:
		return "C"
	case KeyD:
		return "D"
	}
	return string(k)
}
