// Package quiz implements the scored quiz session: a random subset of the
// question bank presented sequentially, independent of intent routing while
// active.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidChoice is returned for an answer outside [1, optionCount]. The
// question index and score are left unchanged.
var ErrInvalidChoice = errors.New("quiz: choice out of range")

// Result reports the outcome of one submitted answer.
type Result struct {
	Correct       bool
	CorrectOption int // 1-based, for the incorrect-answer message
	Explanation   string
	Score         int
}

// Session is one quiz run. Create with NewSession; the session is spent
// once Complete reports true or the caller abandons it.
type Session struct {
	questions []Question
	index     int
	score     int
}

// NewSession samples n questions from the bank without replacement, order
// randomized by rng. n is clamped to the bank size.
func NewSession(bank []Question, n int, rng *rand.Rand) *Session {
	qs := make([]Question, len(bank))
	copy(qs, bank)
	rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	if n > len(qs) {
		n = len(qs)
	}
	return &Session{questions: qs[:n]}
}

// Current returns the question awaiting an answer. Callers must check
// Complete first.
func (s *Session) Current() Question {
	return s.questions[s.index]
}

// Number returns the 1-based position of the current question.
func (s *Session) Number() int { return s.index + 1 }

// Len returns the sampled question count.
func (s *Session) Len() int { return len(s.questions) }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool { return s.index >= len(s.questions) }

// Submit grades a 1-based choice against the current question and advances.
// An out-of-range choice returns ErrInvalidChoice without advancing.
func (s *Session) Submit(choice int) (Result, error) {
	q := s.questions[s.index]
	if choice < 1 || choice > len(q.Options) {
		return Result{}, ErrInvalidChoice
	}
	r := Result{
		Correct:       choice-1 == q.Answer,
		CorrectOption: q.Answer + 1,
		Explanation:   q.Explanation,
	}
	if r.Correct {
		s.score++
	}
	r.Score = s.score
	s.index++
	return r, nil
}

// Summary renders the final score with its qualitative tier.
func (s *Session) Summary() string {
	var tier string
	switch {
	case s.score >= 8:
		tier = "Excellent! You're a cybersecurity expert!"
	case s.score >= 5:
		tier = "Great job! A solid understanding."
	default:
		tier = "A good start, but keep learning!"
	}
	return fmt.Sprintf("🏁 Quiz Complete! Your final score is: %d/%d\n\n%s", s.score, len(s.questions), tier)
}
