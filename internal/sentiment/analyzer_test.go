package sentiment

import "testing"

func TestDetect(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		in   string
		want string
	}{
		{"I'm really worried about being hacked", Worried},
		{"I'm curious, how does a vpn work?", Curious},
		{"this is so frustrating, I'm annoyed", Frustrated},
		{"great, that was awesome", Happy},
		{"got it, all clear now", Confident},
		{"this is all too much and complicated", Overwhelmed},
		{"show my tasks", Neutral},
		{"", Neutral},
	}
	for _, tt := range tests {
		if got := a.Detect(tt.in); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetect_TieKeepsEarlierEntry(t *testing.T) {
	a := NewAnalyzer()

	// One hit for frustrated ("don't understand") and one for confident
	// ("understand" substring); the earlier table entry must win.
	if got := a.Detect("i don't understand"); got != Frustrated {
		t.Errorf("Detect tie = %q, want %q", got, Frustrated)
	}
}

func TestDetect_HighestCountWins(t *testing.T) {
	a := NewAnalyzer()

	// Two worried hits against one happy hit.
	if got := a.Detect("i'm scared and anxious but it's good to ask"); got != Worried {
		t.Errorf("Detect = %q, want %q", got, Worried)
	}
}
