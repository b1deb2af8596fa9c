package nlu

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDaysRe = regexp.MustCompile(`\bin\s+(\d+)\s+days?\b`)
	clockRe  = regexp.MustCompile(`\b(\d{1,2})(:(\d{2}))?\s*(am|pm)?\b`)
)

// ParseWhen parses a natural-language time phrase ("tomorrow at 5pm",
// "in 3 days", "on friday at 10am") relative to now. An input with no date
// or time signal at all returns false; a date with no clock time defaults
// to 09:00.
func ParseWhen(text string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return time.Time{}, false
	}

	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hasDate := false

	switch {
	case strings.Contains(s, "tomorrow"):
		base = base.AddDate(0, 0, 1)
		hasDate = true
	case strings.Contains(s, "today"):
		hasDate = true
	default:
		if m := inDaysRe.FindStringSubmatch(s); m != nil {
			n, _ := strconv.Atoi(m[1])
			base = base.AddDate(0, 0, n)
			hasDate = true
			// Drop the phrase so its digits are not mistaken for a clock time.
			s = inDaysRe.ReplaceAllString(s, "")
		} else {
			for i := 0; i < 7; i++ {
				day := base.AddDate(0, 0, i)
				if strings.Contains(s, strings.ToLower(day.Weekday().String())) {
					base = day
					hasDate = true
					break
				}
			}
		}
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		if !hasDate {
			return time.Time{}, false
		}
		return base.Add(9 * time.Hour), true
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[3] != "" {
		minute, _ = strconv.Atoi(m[3])
	}
	switch m[4] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), true
}
