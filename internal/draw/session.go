// Package draw serves questions at random without replacement.
package draw

import (
	"errors"
	"math/rand/v2"

	"quizbank/internal/question"
)

// ErrExhausted is returned by Next once every record has been served.
var ErrExhausted = errors.New("no more questions available")

// Session is an in-memory working set drawn from a bank snapshot.
// It never writes back to the store.
type Session struct {
	bag   []question.Record
	drawn int
	rng   *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes the draw order reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession copies records into a fresh bag. An empty snapshot is allowed;
// exhaustion is reported by Next.
func NewSession(records []question.Record, opts ...Option) *Session {
	bag := make([]question.Record, len(records))
	for i, record := range records {
		bag[i] = record.Clone()
	}
	s := &Session{
		bag: bag,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next removes and returns a uniformly random record from the bag.
func (s *Session) Next() (question.Record, error) {
	n := len(s.bag)
	if n == 0 {
		return question.Record{}, ErrExhausted
	}
	i := s.rng.IntN(n)
	picked := s.bag[i]
	s.bag[i] = s.bag[n-1]
	s.bag[n-1] = question.Record{}
	s.bag = s.bag[:n-1]
	s.drawn++
	return picked, nil
}

// Remaining reports how many records are left to draw.
func (s *Session) Remaining() int {
	return len(s.bag)
}

// Drawn reports how many records have been served.
func (s *Session) Drawn() int {
	return s.drawn
}
