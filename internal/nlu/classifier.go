package nlu

import (
	"regexp"
	"strings"
)

// rule is a single ordered pattern. Rules are evaluated top to bottom within
// their band; the first match wins.
type rule struct {
	name  string
	topic string
	re    *regexp.Regexp
}

// Classifier converts one line of free text into an Intent. It is
// deterministic and stateless: classifying the same input twice yields the
// same result.
//
// Rules live in two priority bands. Control intents (task listing, quiz
// start/stop, log paging, memory recall, help) are tested before everything
// else because their phrasing overlaps with topic keywords. Within a band,
// declaration order is the tie-break.
type Classifier struct {
	control []rule
	general []rule
}

type topicDef struct {
	name     string
	keywords []string
	phrases  []string
}

// Topic keyword table. For each topic three pattern groups are synthesized:
// specific phrases, a conversational frame, and a bare keyword-boundary
// match, in that order, so conversational phrasing wins over bare mention.
var topicDefs = []topicDef{
	{
		name:     TopicPassword,
		keywords: []string{"password", "passcode", "pass phrase", "credential"},
		phrases: []string{
			`how\s+(strong|good|secure)\s+is\s+my\s+password`,
			`password\s+(safety|security|hygiene|best practices)`,
			`create\s+a\s+strong\s+password`,
		},
	},
	{
		name:     TopicTwoFactorAuth,
		keywords: []string{"2fa", "two factor", "mfa", "multi-factor", "authenticator", "verification code", "otp"},
		phrases: []string{
			`should\s+i\s+use\s+2fa`,
			`what\s+is\s+an\s+authenticator\s+app`,
			`is\s+sms\s+2fa\s+safe`,
		},
	},
	{
		name:     TopicPhishing,
		keywords: []string{"phishing", "phish", "fake email", "smishing", "vishing"},
		phrases: []string{
			`how\s+to\s+spot\s+a\s+phishing\s+email`,
			`i\s+got\s+a\s+weird\s+(email|text)`,
			`report\s+phishing`,
		},
	},
	{
		name:     TopicRansomware,
		keywords: []string{"ransomware", "ransom"},
	},
	{
		name:     TopicVirus,
		keywords: []string{"virus", "viruses", "worm"},
	},
	{
		name:     TopicMalware,
		keywords: []string{"malware", "spyware", "trojan", "antivirus", "adware", "keylogger"},
		phrases: []string{
			`how\s+to\s+remove\s+a\s+virus`,
			`my\s+computer\s+is\s+acting\s+weird`,
			`do\s+i\s+need\s+antivirus`,
		},
	},
	{
		name:     TopicVPN,
		keywords: []string{"vpn", "virtual private network"},
		phrases: []string{
			`should\s+i\s+use\s+a\s+vpn`,
			`how\s+does\s+a\s+vpn\s+work`,
			`is\s+a\s+free\s+vpn\s+safe`,
		},
	},
	{
		name:     TopicWiFiSecurity,
		keywords: []string{"wifi", "wi-fi", "public wifi", "hotspot", "wpa2", "wpa3"},
		phrases: []string{
			`is\s+public\s+wifi\s+safe`,
			`secure\s+my\s+home\s+network`,
			`airport\s+wifi\s+security`,
		},
	},
	{
		name:     TopicHTTPS,
		keywords: []string{"https", "padlock", "ssl", "tls"},
	},
	{
		name:     TopicDataBreach,
		keywords: []string{"data breach", "hacked", "leaked", "compromised", "have i been pwned"},
	},
	{
		name:     TopicEncryption,
		keywords: []string{"encryption", "encrypt", "end-to-end", "e2ee", "bitlocker"},
	},
}

// NewClassifier builds the full rule table.
func NewClassifier() *Classifier {
	c := &Classifier{}

	// Band A: control intents, fixed priority order.
	c.addControl(IntentListTasks, `(show|list|see|view|what are|check)\s+(my\s+)?(tasks|reminders|to-?dos)`)
	c.addControl(IntentStartQuiz,
		`(start|take|begin|do|launch)\s+(a\s+)?(random\s+)?quiz`,
		`test\s+my\s+knowledge`,
		`give\s+me\s+a\s+quiz`)
	c.addControl(IntentStopQuiz, `(stop|end|quit|exit)\s+(the\s+)?quiz`)
	c.addControl(IntentViewLog, `(show|view)\s+(my\s+)?(activity|log|history)`)
	c.addControl(IntentViewMoreLog, `show\s+more`, `next\s+page`, `^(more|next)$`)
	c.addControl(IntentRecallMemory,
		`what\s+do\s+you\s+(know|remember)\s+about\s+me`,
		`what\s+did\s+i\s+tell\s+you`,
		`(show|recall)\s+(my\s+)?memory`)
	c.addControl(IntentHelp, `\b(help|options|commands|what can you do)\b`)

	// Band B: topic rules, then the remaining conversational intents.
	for _, def := range topicDefs {
		for _, p := range def.phrases {
			c.general = append(c.general, rule{name: IntentGetInfo, topic: def.name, re: compile(p)})
		}
		escaped := make([]string, len(def.keywords))
		for i, kw := range def.keywords {
			escaped[i] = regexp.QuoteMeta(kw)
		}
		alt := strings.Join(escaped, "|")
		c.general = append(c.general,
			rule{name: IntentGetInfo, topic: def.name, re: compile(`(what is|what are|tell me about|how do i|explain|info on)\s+.*?(` + alt + `)`)},
			rule{name: IntentGetInfo, topic: def.name, re: compile(`\b(` + alt + `)s?\b`)})
	}
	c.addGeneral(IntentAcknowledgeInfo,
		`\b(i work as|my job is|i'?m a|i am a|i use|i have|i like|i prefer|i'?m on)\b`,
		`\b(i'?m|i am)\s+(new to this|a beginner|just starting|experienced|an expert|advanced|\d{1,2}\s*years?\s*old)\b`)
	c.addGeneral(IntentGreeting, `\b(hi|hello|hey|yo|howdy|good morning|good afternoon)\b`)
	c.addGeneral(IntentThankYou, `\b(thanks|thank you|thx|cheers|appreciated)\b`)
	c.addGeneral(IntentConfirm, `\b(yes|yeah|yep|yup|sure|okay|ok|absolutely|go ahead|please do)\b`)
	c.addGeneral(IntentDeny, `\b(no|nope|nah|never mind|cancel|not now|don'?t bother)\b`)

	return c
}

func (c *Classifier) addControl(name string, patterns ...string) {
	for _, p := range patterns {
		c.control = append(c.control, rule{name: name, re: compile(p)})
	}
}

func (c *Classifier) addGeneral(name string, patterns ...string) {
	for _, p := range patterns {
		c.general = append(c.general, rule{name: name, re: compile(p)})
	}
}

func compile(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// Classify resolves one utterance to an Intent. The caller filters empty
// input, so text is assumed non-blank. Matching is case-insensitive against
// the original text so entity values keep their original casing.
func (c *Classifier) Classify(text string) Intent {
	original := strings.TrimSpace(text)
	lower := strings.ToLower(original)

	// The task pre-pass takes absolute priority: task phrasing overlaps
	// heavily with generic keyword patterns.
	if title, when, ok := extractTask(original); ok {
		ents := map[string]string{"task": title}
		if when != "" {
			ents["time"] = when
		}
		return Intent{Name: IntentCreateTask, Entities: ents}
	}

	for _, r := range c.control {
		if r.re.MatchString(original) {
			return Intent{Name: r.name, Entities: map[string]string{}}
		}
	}

	for _, r := range c.general {
		// An opening interrogative means a question about stored facts,
		// not a new personal disclosure.
		if r.name == IntentAcknowledgeInfo && strings.HasPrefix(lower, "what") {
			continue
		}
		if r.re.MatchString(original) {
			return Intent{Name: r.name, Topic: r.topic, Entities: map[string]string{}}
		}
	}

	return Intent{Name: IntentFallback, Entities: map[string]string{}}
}
