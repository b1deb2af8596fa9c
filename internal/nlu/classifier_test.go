package nlu

import "testing"

func TestClassify_Topics(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		in    string
		topic string
	}{
		{"what is phishing?", TopicPhishing},
		{"tell me about vpn", TopicVPN},
		{"how strong is my password", TopicPassword},
		{"should i use 2fa", TopicTwoFactorAuth},
		{"is public wifi safe", TopicWiFiSecurity},
		{"info on ransomware", TopicRansomware},
		{"explain encryption", TopicEncryption},
		{"i think i was hacked", TopicDataBreach},
		{"do i need antivirus", TopicMalware},
		{"what does the padlock mean", TopicHTTPS},
		{"my laptop has a virus", TopicVirus},
	}
	for _, tt := range tests {
		got := c.Classify(tt.in)
		if got.Name != IntentGetInfo {
			t.Errorf("Classify(%q).Name = %q, want GetInfo", tt.in, got.Name)
			continue
		}
		if got.Topic != tt.topic {
			t.Errorf("Classify(%q).Topic = %q, want %q", tt.in, got.Topic, tt.topic)
		}
	}
}

func TestClassify_ControlIntents(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		in   string
		want string
	}{
		{"show my tasks", IntentListTasks},
		{"what are my reminders", IntentListTasks},
		{"start quiz", IntentStartQuiz},
		{"take a random quiz", IntentStartQuiz},
		{"test my knowledge", IntentStartQuiz},
		{"stop the quiz", IntentStopQuiz},
		{"show my activity", IntentViewLog},
		{"view log", IntentViewLog},
		{"show more", IntentViewMoreLog},
		{"next page", IntentViewMoreLog},
		{"more", IntentViewMoreLog},
		{"what do you remember about me", IntentRecallMemory},
		{"what did i tell you", IntentRecallMemory},
		{"help", IntentHelp},
		{"what can you do", IntentHelp},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.in); got.Name != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestClassify_ControlBeatsTopicKeywords(t *testing.T) {
	c := NewClassifier()

	// "quiz me on passwords" style phrasing must not fall through to the
	// password topic, and "more" alone must not reach the topic band.
	if got := c.Classify("start a quiz about passwords"); got.Name != IntentStartQuiz {
		t.Errorf("quiz phrasing classified as %q", got.Name)
	}
	// Bare "more"/"next" only count as paging when they are the whole input.
	if got := c.Classify("tell me more about vpn"); got.Name != IntentGetInfo || got.Topic != TopicVPN {
		t.Errorf("Classify(tell me more about vpn) = %+v, want GetInfo/vpn", got)
	}
}

func TestClassify_CreateTask(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("remind me to update my PC tomorrow at 5pm")
	if got.Name != IntentCreateTask {
		t.Fatalf("intent = %q, want CreateTask", got.Name)
	}
	if got.Entities["task"] != "update my PC" {
		t.Errorf("task = %q, want %q", got.Entities["task"], "update my PC")
	}
	if got.Entities["time"] != "tomorrow at 5pm" {
		t.Errorf("time = %q, want %q", got.Entities["time"], "tomorrow at 5pm")
	}
}

func TestClassify_CreateTask_NoTime(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("add a task to review my privacy settings")
	if got.Name != IntentCreateTask {
		t.Fatalf("intent = %q, want CreateTask", got.Name)
	}
	if got.Entities["task"] != "review my privacy settings" {
		t.Errorf("task = %q", got.Entities["task"])
	}
	if _, ok := got.Entities["time"]; ok {
		t.Errorf("unexpected time entity %q", got.Entities["time"])
	}
}

func TestClassify_TaskWordWithoutLeadIn(t *testing.T) {
	c := NewClassifier()

	// Mentions "tasks" but is a listing request, not a creation.
	if got := c.Classify("show my tasks"); got.Name != IntentListTasks {
		t.Errorf("Classify(show my tasks) = %q, want ListTasks", got.Name)
	}
}

func TestClassify_Conversational(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		in   string
		want string
	}{
		{"hello", IntentGreeting},
		{"hi there", IntentGreeting},
		{"thanks a lot", IntentThankYou},
		{"yes please", IntentConfirm},
		{"nope", IntentDeny},
		{"i work as a nurse", IntentAcknowledgeInfo},
		{"i use an iphone", IntentAcknowledgeInfo},
		{"qwerty asdf zxcv", IntentFallback},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.in); got.Name != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.in, got.Name, tt.want)
		}
	}
}

func TestClassify_WhatPrefixSkipsAcknowledge(t *testing.T) {
	c := NewClassifier()

	// Starts with an interrogative, so the "i have"/"i use" family must not
	// claim it even though "I have" appears.
	got := c.Classify("what should I have for my home network")
	if got.Name == IntentAcknowledgeInfo {
		t.Errorf("interrogative misread as personal disclosure")
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier()

	inputs := []string{
		"what is phishing?",
		"remind me to update my PC tomorrow at 5pm",
		"start quiz",
		"hello",
		"complete gibberish here",
	}
	for _, in := range inputs {
		a := c.Classify(in)
		b := c.Classify(in)
		if a.Name != b.Name || a.Topic != b.Topic {
			t.Errorf("Classify(%q) not deterministic: %+v vs %+v", in, a, b)
		}
	}
}

func TestClassify_EntitiesNeverNil(t *testing.T) {
	c := NewClassifier()

	for _, in := range []string{"hello", "what is a vpn", "gibberish", "show my tasks"} {
		if got := c.Classify(in); got.Entities == nil {
			t.Errorf("Classify(%q).Entities is nil", in)
		}
	}
}

func TestExtractTask(t *testing.T) {
	tests := []struct {
		in        string
		title     string
		when      string
		ok        bool
	}{
		{"remind me to back up my files in 3 days", "back up my files", "in 3 days", true},
		{"set a reminder to change my password on friday", "change my password", "friday", true},
		{"create a task to enable 2fa", "enable 2fa", "", true},
		{"remind me about the virus scan at 10am", "about the virus scan", "10am", true},
		{"show my tasks", "", "", false},
		{"what is a task manager", "", "", false},
		{"remind me to", "", "", false},
	}
	for _, tt := range tests {
		title, when, ok := extractTask(tt.in)
		if ok != tt.ok {
			t.Errorf("extractTask(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if title != tt.title {
			t.Errorf("extractTask(%q) title = %q, want %q", tt.in, title, tt.title)
		}
		if when != tt.when {
			t.Errorf("extractTask(%q) when = %q, want %q", tt.in, when, tt.when)
		}
	}
}
