package nlu

import (
	"regexp"
	"strings"
)

// Task/reminder extraction runs before every other rule. It triggers only on
// an explicit task word, strips the time phrase and a known lead-in, and
// treats whatever is left as the task title.

var taskTriggerRe = regexp.MustCompile(`(?i)\b(task|remind(er)?|to-?do)\b`)

// timePhraseRe matches one natural-language time phrase: a relative day
// ("tomorrow", "in 3 days", a weekday name) optionally followed by a clock
// time, or a bare clock time ("at 5pm"). Group 1 is the phrase without the
// leading preposition.
var timePhraseRe = regexp.MustCompile(`(?i)\b(?:(?:on|at|in|by|this|next)\s+)?` +
	`((?:tomorrow|today|monday|tuesday|wednesday|thursday|friday|saturday|sunday|in\s+\d+\s+days?)` +
	`(?:\s+(?:at\s+)?\d{1,2}(?::\d{2})?\s*(?:am|pm)?)?` +
	`|\d{1,2}(?::\d{2})?\s*(?:am|pm))\b`)

// Boilerplate lead-ins, most specific first. One of these must match for
// the pre-pass to claim the input; otherwise "show my tasks" would be
// swallowed before the ListTasks rule gets a chance.
var leadInRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(please\s+)?remind\s+me\s+to\b`),
	regexp.MustCompile(`(?i)^(please\s+)?remind\s+me\b`),
	regexp.MustCompile(`(?i)^set\s+(a\s+)?reminder\s+(for|to)\b`),
	regexp.MustCompile(`(?i)^set\s+(a\s+)?reminder\b`),
	regexp.MustCompile(`(?i)^(add|create)\s+(a\s+)?(new\s+)?task(\s+(to|for))?\b`),
	regexp.MustCompile(`(?i)^(add|create)\s+(a\s+)?to-?do(\s+(to|for))?\b`),
	regexp.MustCompile(`(?i)^i\s+need\s+a\s+reminder\s+(for|to)\b`),
}

var danglingPrepRe = regexp.MustCompile(`(?i)\s+(on|at|in|for|by)\s*$`)

// extractTask attempts the CreateTask pre-pass. It returns the task title
// (original casing preserved), the raw time phrase if one was present, and
// whether the input is a task creation at all.
func extractTask(original string) (title, when string, ok bool) {
	if !taskTriggerRe.MatchString(original) {
		return "", "", false
	}

	working := original
	if loc := timePhraseRe.FindStringSubmatchIndex(working); loc != nil {
		when = strings.TrimSpace(working[loc[2]:loc[3]])
		working = working[:loc[0]] + working[loc[1]:]
	}

	matched := false
	for _, re := range leadInRes {
		if loc := re.FindStringIndex(strings.TrimSpace(working)); loc != nil {
			working = strings.TrimSpace(working)[loc[1]:]
			matched = true
			break
		}
	}
	if !matched {
		return "", "", false
	}

	title = strings.TrimSpace(working)
	title = danglingPrepRe.ReplaceAllString(title, "")
	title = strings.Trim(title, " .,!?")
	if title == "" {
		return "", "", false
	}
	return title, when, true
}
