package memory

import (
	"regexp"
	"strings"
)

// Extractor pulls personal facts out of free text on every turn, whatever
// the detected intent. Each extractor owns a disjoint fact key, so execution
// order does not matter and a key is only ever added within a session.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	jobRe   = regexp.MustCompile(`(?i)(?:i work as|my job is|i'?m an?)\s+([a-zA-Z ]+)`)
	ageRe   = regexp.MustCompile(`(?i)i'?m\s+(\d{1,2})\s*years?\s*old`)
	skillRe = struct {
		beginner, advanced *regexp.Regexp
	}{
		beginner: regexp.MustCompile(`(?i)(i'?m|i am)\s+(new to this|a beginner|just starting)`),
		advanced: regexp.MustCompile(`(?i)(i'?m|i am)\s+(experienced|an expert|advanced)`),
	}

	deviceNames  = []string{"iphone", "android", "laptop", "pc", "mac", "computer", "tablet", "ipad", "windows"}
	serviceNames = []string{"facebook", "instagram", "twitter", "linkedin", "gmail", "outlook", "tiktok"}
	techJobWords = []string{"developer", "programmer", "engineer", "it", "tech", "computer", "software", "data", "cybersecurity"}
)

var (
	deviceRes  = compileMentionSet(`\b(i use|i have|my)\s+(an? )?(%s)\b`, deviceNames)
	serviceRes = compileMentionSet(`\b(i use|i'?m on)\s+(%s)\b`, serviceNames)
)

type mention struct {
	word string
	re   *regexp.Regexp
}

func compileMentionSet(template string, words []string) []mention {
	out := make([]mention, len(words))
	for i, w := range words {
		out[i] = mention{word: w, re: regexp.MustCompile(`(?i)` + strings.Replace(template, "%s", w, 1))}
	}
	return out
}

// Extract runs all fact extractors against the input, mutating the profile
// in place.
func (e *Extractor) Extract(p *Profile, text string) {
	e.extractJob(p, text)
	e.extractSkill(p, text)
	e.extractMentions(p, "devices", deviceRes, text)
	e.extractMentions(p, "services", serviceRes, text)
	e.extractAge(p, text)
}

func (e *Extractor) extractJob(p *Profile, text string) {
	m := jobRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	job := strings.TrimSpace(m[1])
	p.RememberFact("job", job)
	if IsTechJob(job) {
		p.RememberFact("tech_level", "advanced")
	}
}

func (e *Extractor) extractSkill(p *Profile, text string) {
	switch {
	case skillRe.beginner.MatchString(text):
		p.RememberFact("skill_level", "beginner")
	case skillRe.advanced.MatchString(text):
		p.RememberFact("skill_level", "advanced")
	}
}

// extractMentions accumulates matched words into a space-joined,
// deduplicated set under the given key.
func (e *Extractor) extractMentions(p *Profile, key string, set []mention, text string) {
	for _, m := range set {
		if !m.re.MatchString(text) {
			continue
		}
		current, _ := p.Fact(key)
		if strings.Contains(current, m.word) {
			continue
		}
		p.RememberFact(key, strings.TrimSpace(current+" "+m.word))
	}
}

func (e *Extractor) extractAge(p *Profile, text string) {
	if m := ageRe.FindStringSubmatch(text); m != nil {
		p.RememberFact("age", m[1])
	}
}

// IsTechJob reports whether a job description sounds technical.
func IsTechJob(job string) bool {
	lower := strings.ToLower(job)
	for _, w := range techJobWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
