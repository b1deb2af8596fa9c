package responder

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/nordlabs/cyberadvisor/internal/memory"
	"github.com/nordlabs/cyberadvisor/internal/nlu"
	"github.com/nordlabs/cyberadvisor/internal/sentiment"
)

func newSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(42)))
}

func TestTopicReturnsKnownVariant(t *testing.T) {
	s := newSelector()
	for topic, variants := range topicBank {
		got := s.Topic(topic)
		found := false
		for _, v := range variants {
			if got == v {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Topic(%q) = %q, not in the variant bank", topic, got)
		}
	}
}

func TestTopicUnknown(t *testing.T) {
	s := newSelector()
	if got := s.Topic("quantum_cryptography"); got != "" {
		t.Errorf("Topic on unknown topic = %q, want empty", got)
	}
}

func TestTopicVariantsRotate(t *testing.T) {
	s := newSelector()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[s.Topic(nlu.TopicPassword)] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 draws produced %d distinct variants, want at least 2", len(seen))
	}
}

func TestFallbackWithoutInterests(t *testing.T) {
	s := newSelector()
	p := memory.NewProfile(time.Now())
	for i := 0; i < 20; i++ {
		got := s.Fallback(p)
		if strings.Contains(got, "Earlier you asked about") {
			t.Fatalf("Fallback on an empty profile referenced an interest: %q", got)
		}
		found := false
		for _, v := range fallbackBank {
			if got == v {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Fallback() = %q, not in the bank", got)
		}
	}
}

func TestFallbackMentionsInterests(t *testing.T) {
	s := newSelector()
	p := memory.NewProfile(time.Now())
	p.AddInterest("phishing")

	mentioned := false
	for i := 0; i < 50; i++ {
		if strings.Contains(s.Fallback(p), "Earlier you asked about phishing") {
			mentioned = true
			break
		}
	}
	if !mentioned {
		t.Error("50 fallbacks never referenced the recorded interest")
	}
}

func TestPersonalize(t *testing.T) {
	tests := []struct {
		name  string
		facts map[string]string
		topic string
		want  string // substring; "" means no personalization
	}{
		{
			name:  "beginner",
			facts: map[string]string{"skill_level": "beginner"},
			topic: nlu.TopicPassword,
			want:  "break it down simply",
		},
		{
			name:  "advanced",
			facts: map[string]string{"skill_level": "advanced"},
			topic: nlu.TopicVPN,
			want:  "Given your tech background, here's a more detailed perspective on vpn:",
		},
		{
			name:  "tech job",
			facts: map[string]string{"job": "software developer"},
			topic: nlu.TopicMalware,
			want:  "tech background",
		},
		{
			name:  "non-tech job",
			facts: map[string]string{"job": "a nurse"},
			topic: nlu.TopicMalware,
			want:  "",
		},
		{
			name:  "iphone on two-factor topic",
			facts: map[string]string{"devices": "iphone"},
			topic: nlu.TopicTwoFactorAuth,
			want:  "Apple ID settings",
		},
		{
			name:  "android on two-factor topic",
			facts: map[string]string{"devices": "android"},
			topic: nlu.TopicTwoFactorAuth,
			want:  "Google account",
		},
		{
			name:  "iphone on unrelated topic",
			facts: map[string]string{"devices": "iphone"},
			topic: nlu.TopicPhishing,
			want:  "",
		},
		{
			name:  "nothing known",
			facts: nil,
			topic: nlu.TopicPassword,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSelector()
			p := memory.NewProfile(time.Now())
			for k, v := range tt.facts {
				p.RememberFact(k, v)
			}
			got := s.Personalize(p, tt.topic)
			if tt.want == "" {
				if got != "" {
					t.Errorf("Personalize() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Personalize() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestPersonalizePicksAmongCandidates(t *testing.T) {
	s := newSelector()
	p := memory.NewProfile(time.Now())
	p.RememberFact("skill_level", "advanced")
	p.RememberFact("devices", "iphone android")

	seen := map[string]bool{}
	for i := 0; i < 60; i++ {
		seen[s.Personalize(p, nlu.TopicTwoFactorAuth)] = true
	}
	if len(seen) < 2 {
		t.Errorf("60 draws over 3 candidates produced %d distinct lines", len(seen))
	}
	if seen[""] {
		t.Error("Personalize returned empty with candidates available")
	}
}

func TestEmpathyPrefix(t *testing.T) {
	s := newSelector()
	tests := []struct {
		tag  string
		want string
	}{
		{sentiment.Worried, "No need to panic — this is very manageable."},
		{sentiment.Frustrated, "I hear you, this stuff can be annoying. Let's sort it out."},
		{sentiment.Overwhelmed, "Let's take it one step at a time."},
		{sentiment.Happy, ""},
		{sentiment.Neutral, ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := s.EmpathyPrefix(tt.tag); got != tt.want {
			t.Errorf("EmpathyPrefix(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
