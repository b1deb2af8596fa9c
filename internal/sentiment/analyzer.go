// Package sentiment derives a coarse mood tag from keyword counting. The tag
// only ever selects response phrasing and presentation styling; it carries no
// meaning inside the dialogue engine.
package sentiment

import "strings"

// Conversational tags Detect can return.
const (
	Worried     = "worried"
	Curious     = "curious"
	Frustrated  = "frustrated"
	Happy       = "happy"
	Confident   = "confident"
	Overwhelmed = "overwhelmed"
	Neutral     = "neutral"
)

// UI-only tags used for presentation styling, never produced by Detect.
const (
	Summary    = "summary"
	Suggestion = "suggestion"
	Error      = "error"
)

type entry struct {
	tag      string
	keywords []string
}

// Analyzer counts keyword hits per mood. The table is ordered: on a tied
// count the earlier entry wins, so results are deterministic.
type Analyzer struct {
	table []entry
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{table: []entry{
		{Worried, []string{"worried", "concerned", "anxious", "scared", "afraid", "nervous", "panic", "stress"}},
		{Curious, []string{"curious", "interested", "wonder", "learn", "know more", "tell me", "explain", "how does"}},
		{Frustrated, []string{"frustrated", "annoyed", "angry", "mad", "upset", "irritated", "confused", "don't understand"}},
		{Happy, []string{"great", "awesome", "excellent", "wonderful", "amazing", "love", "like", "good", "nice"}},
		{Confident, []string{"confident", "sure", "ready", "prepared", "understand", "got it", "clear", "easy"}},
		{Overwhelmed, []string{"overwhelmed", "too much", "complicated", "difficult", "hard", "complex", "lost"}},
	}}
}

// Detect returns the mood with the highest keyword count, or "neutral" when
// nothing matches.
func (a *Analyzer) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Neutral
	}
	lower := strings.ToLower(text)

	best := Neutral
	bestScore := 0
	for _, e := range a.table {
		score := 0
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = e.tag
			bestScore = score
		}
	}
	return best
}
