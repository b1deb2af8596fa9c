// Package responder selects response text for a resolved topic or fallback
// condition, optionally colored by a sentiment tag and by what the profile
// remembers about the user.
package responder

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nordlabs/cyberadvisor/internal/memory"
	"github.com/nordlabs/cyberadvisor/internal/nlu"
	"github.com/nordlabs/cyberadvisor/internal/sentiment"
)

// Selector picks response variants. The randomness source is injected so
// tests can pin the choice.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Topic returns one response variant for a known topic, or "" for an
// unknown one.
func (s *Selector) Topic(topic string) string {
	variants, ok := topicBank[topic]
	if !ok {
		return ""
	}
	return variants[s.rng.Intn(len(variants))]
}

// Fallback produces a classifier-miss response. When the profile has
// recorded interests, every other pick points the user back at one of them.
func (s *Selector) Fallback(p *memory.Profile) string {
	line := fallbackBank[s.rng.Intn(len(fallbackBank))]
	if len(p.Interests) > 0 && s.rng.Intn(2) == 0 {
		topic := p.Interests[s.rng.Intn(len(p.Interests))]
		line += fmt.Sprintf(" Earlier you asked about %s — want to dig deeper into that?", topic)
	}
	return line
}

// Personalize builds an introductory phrase from stored memories and the
// current topic. Returns "" when nothing applies.
func (s *Selector) Personalize(p *memory.Profile, topic string) string {
	var candidates []string

	job, _ := p.Fact("job")
	skill, _ := p.Fact("skill_level")
	if skill == "beginner" {
		candidates = append(candidates, "Since you mentioned you're new to this, let me break it down simply:")
	} else if skill == "advanced" || (job != "" && memory.IsTechJob(job)) {
		candidates = append(candidates, fmt.Sprintf("Given your tech background, here's a more detailed perspective on %s:", strings.ToLower(topic)))
	}

	if devices, ok := p.Fact("devices"); ok && topic == nlu.TopicTwoFactorAuth {
		if strings.Contains(devices, "iphone") {
			candidates = append(candidates, "For your iPhone, setting this up in your Apple ID settings is a great start.")
		}
		if strings.Contains(devices, "android") {
			candidates = append(candidates, "On your Android, securing your Google account with this is crucial.")
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// EmpathyPrefix returns a short tone-setting lead for a detected sentiment,
// or "" for neutral moods.
func (s *Selector) EmpathyPrefix(tag string) string {
	switch tag {
	case sentiment.Worried:
		return "No need to panic — this is very manageable."
	case sentiment.Frustrated:
		return "I hear you, this stuff can be annoying. Let's sort it out."
	case sentiment.Overwhelmed:
		return "Let's take it one step at a time."
	default:
		return ""
	}
}
