// Package dialogue implements the per-session state machine. Each turn is
// consumed by exactly one of three modes: an active quiz, a pending reminder
// confirmation, or normal intent routing.
package dialogue

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nordlabs/cyberadvisor/internal/activity"
	"github.com/nordlabs/cyberadvisor/internal/memory"
	"github.com/nordlabs/cyberadvisor/internal/nlu"
	"github.com/nordlabs/cyberadvisor/internal/quiz"
	"github.com/nordlabs/cyberadvisor/internal/responder"
	"github.com/nordlabs/cyberadvisor/internal/sentiment"
)

// Reply is one outgoing message plus the sentiment tag the presentation
// layer may use for styling.
type Reply struct {
	Text      string
	Sentiment string
}

// Mode is the conversational state consuming the next turn.
type Mode int

const (
	ModeNormal Mode = iota
	ModeQuizActive
	ModeAwaitingReminderTime
)

const (
	defaultQuizLength  = 10
	defaultLogPageSize = 5
	dueTimeFormat      = "Jan 2, 2006 3:04 PM"
)

const helpText = "Here are some things you can do:\n\n" +
	"💬 Ask about topics like: 'password safety', 'what is phishing?', 'info on VPNs'\n\n" +
	"✔️ Manage tasks: 'remind me to update my pc tomorrow at 2pm', 'show my tasks'\n\n" +
	"❓ Take a quiz: 'start a quiz' or 'test my knowledge'"

var nameRe = regexp.MustCompile(`(?i)(?:my name is|call me|i am)\s+([A-Za-z]+)`)

// Words the loose name pattern captures that are never names.
var nameStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "so": true, "not": true,
	"very": true, "just": true, "here": true,
}

// Options configures a Controller. Zero values fall back to defaults; Rand
// and Clock are injectable for deterministic tests.
type Options struct {
	QuizLength  int
	LogPageSize int
	Rand        *rand.Rand
	Clock       func() time.Time
}

// Controller owns all session-scoped state: the profile, the activity log,
// the mode, and the paging cursor. It is confined to a single conversation
// and is not safe for concurrent use.
type Controller struct {
	classifier *nlu.Classifier
	extractor  *memory.Extractor
	analyzer   *sentiment.Analyzer
	selector   *responder.Selector

	profile *memory.Profile
	log     *activity.Log

	quizSession *quiz.Session
	pendingTask *memory.Task
	logPage     int

	quizLength  int
	logPageSize int
	rng         *rand.Rand
	clock       func() time.Time
}

// NewController starts a fresh session: empty log, default profile, normal
// mode.
func NewController(opts Options) *Controller {
	if opts.QuizLength <= 0 {
		opts.QuizLength = defaultQuizLength
	}
	if opts.LogPageSize <= 0 {
		opts.LogPageSize = defaultLogPageSize
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	c := &Controller{
		classifier:  nlu.NewClassifier(),
		extractor:   memory.NewExtractor(),
		analyzer:    sentiment.NewAnalyzer(),
		selector:    responder.NewSelector(opts.Rand),
		profile:     memory.NewProfile(opts.Clock()),
		log:         activity.NewLog(opts.Clock),
		logPage:     -1,
		quizLength:  opts.QuizLength,
		logPageSize: opts.LogPageSize,
		rng:         opts.Rand,
		clock:       opts.Clock,
	}
	c.log.Append(activity.System, "New session started.")
	return c
}

// Mode returns the state that will consume the next turn.
func (c *Controller) Mode() Mode {
	switch {
	case c.quizSession != nil:
		return ModeQuizActive
	case c.pendingTask != nil:
		return ModeAwaitingReminderTime
	default:
		return ModeNormal
	}
}

// Profile exposes the session profile (reminder sweeps, status views).
func (c *Controller) Profile() *memory.Profile { return c.profile }

// Log exposes the session activity log.
func (c *Controller) Log() *activity.Log { return c.log }

// Welcome returns the opening messages of a new session.
func (c *Controller) Welcome() []Reply {
	return []Reply{
		{Text: "🛡️ Welcome to CyberAdvisor! I'm your enhanced AI security mentor.", Sentiment: sentiment.Neutral},
		{Text: "First, what should I call you? (e.g., 'my name is Alex')", Sentiment: sentiment.Neutral},
	}
}

// HandleTurn consumes one line of user input and returns zero or more
// replies. Blank input is dropped before it reaches the classifier.
func (c *Controller) HandleTurn(input string) []Reply {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	c.profile.InteractionCount++

	switch {
	case c.quizSession != nil:
		return c.handleQuizTurn(input)
	case c.pendingTask != nil:
		return c.handleReminderTurn(input)
	default:
		return c.handleNormalTurn(input)
	}
}

func (c *Controller) handleNormalTurn(input string) []Reply {
	tag := c.analyzer.Detect(input)
	c.profile.LastSentiment = tag

	c.extractor.Extract(c.profile, input)
	intent := c.classifier.Classify(input)

	// Any intent other than log paging abandons the paging cursor.
	if intent.Name != nlu.IntentViewLog && intent.Name != nlu.IntentViewMoreLog {
		c.logPage = -1
	}

	var replies []Reply
	switch intent.Name {
	case nlu.IntentCreateTask:
		replies = c.handleCreateTask(intent)
	case nlu.IntentGetInfo:
		replies = c.handleGetInfo(intent, tag)
	case nlu.IntentListTasks:
		c.log.Append(activity.System, "User listed their current tasks.")
		replies = []Reply{{Text: c.renderTaskList(), Sentiment: sentiment.Neutral}}
	case nlu.IntentStartQuiz:
		replies = c.startQuiz()
	case nlu.IntentStopQuiz:
		replies = []Reply{{Text: "There's no quiz running right now. Say 'start quiz' to begin one.", Sentiment: sentiment.Neutral}}
	case nlu.IntentViewLog:
		c.logPage = 0
		replies = []Reply{{Text: c.renderLogPage(), Sentiment: sentiment.Summary}}
	case nlu.IntentViewMoreLog:
		if c.logPage == -1 {
			replies = []Reply{{Text: "Please ask to see the log first.", Sentiment: sentiment.Neutral}}
		} else {
			c.logPage++
			replies = []Reply{{Text: c.renderLogPage(), Sentiment: sentiment.Summary}}
		}
	case nlu.IntentRecallMemory:
		c.log.Append(activity.System, "User requested a memory recall.")
		replies = []Reply{{Text: c.renderMemory(), Sentiment: sentiment.Neutral}}
	case nlu.IntentAcknowledgeInfo:
		c.log.Append(activity.System, "User provided personal info, memory updated.")
		replies = []Reply{{Text: "Thanks, I'll remember that for our conversation!", Sentiment: sentiment.Happy}}
	case nlu.IntentGreeting:
		replies = []Reply{{Text: fmt.Sprintf("Hello %s! How can I assist you today?", c.profile.Name), Sentiment: sentiment.Happy}}
	case nlu.IntentThankYou:
		replies = []Reply{{Text: fmt.Sprintf("You're welcome, %s! Stay safe online.", c.profile.Name), Sentiment: sentiment.Happy}}
	case nlu.IntentHelp:
		replies = []Reply{{Text: helpText, Sentiment: sentiment.Suggestion}}
	case nlu.IntentConfirm:
		replies = []Reply{{Text: "Alright! What would you like to do next?", Sentiment: sentiment.Neutral}}
	case nlu.IntentDeny:
		replies = []Reply{{Text: "No problem. Anything else you'd like to know?", Sentiment: sentiment.Neutral}}
	default:
		replies = []Reply{{Text: c.selector.Fallback(c.profile), Sentiment: tag}}
	}

	// Name capture overlays every normal turn, whatever the intent.
	if m := nameRe.FindStringSubmatch(input); m != nil && !nameStopWords[strings.ToLower(m[1])] {
		c.profile.Name = m[1]
		switch intent.Name {
		case nlu.IntentFallback, nlu.IntentGreeting, nlu.IntentAcknowledgeInfo:
			replies = []Reply{{Text: fmt.Sprintf("Got it! Nice to meet you, %s.", c.profile.Name), Sentiment: sentiment.Happy}}
		}
	}

	return replies
}

func (c *Controller) handleCreateTask(intent nlu.Intent) []Reply {
	title, ok := intent.Entities["task"]
	if !ok || strings.TrimSpace(title) == "" {
		return []Reply{{Text: c.selector.Fallback(c.profile), Sentiment: sentiment.Neutral}}
	}

	task := memory.NewTask(title, "Created via chat.", c.clock())
	when, hasTime := intent.Entities["time"]
	if hasTime {
		if due, parsed := nlu.ParseWhen(when, c.clock()); parsed {
			task.Due = &due
			c.commitTask(task)
			return []Reply{{
				Text:      fmt.Sprintf("✅ Got it! I will remind you to '%s' on %s.", title, due.Format(dueTimeFormat)),
				Sentiment: sentiment.Happy,
			}}
		}
		c.pendingTask = task
		return []Reply{{
			Text:      fmt.Sprintf("✅ Task '%s' added. I had trouble understanding the date. When should I remind you?", title),
			Sentiment: sentiment.Neutral,
		}}
	}

	c.pendingTask = task
	return []Reply{{
		Text:      fmt.Sprintf("✅ Task '%s' has been added. Would you like to set a reminder for it?", title),
		Sentiment: sentiment.Neutral,
	}}
}

func (c *Controller) handleReminderTurn(input string) []Reply {
	intent := c.classifier.Classify(input)

	if intent.Name == nlu.IntentDeny {
		task := c.pendingTask
		c.pendingTask = nil
		c.commitTask(task)
		return []Reply{{Text: "Okay, I've added it to your list with no reminder.", Sentiment: sentiment.Neutral}}
	}

	if due, parsed := nlu.ParseWhen(input, c.clock()); parsed {
		task := c.pendingTask
		c.pendingTask = nil
		task.Due = &due
		c.commitTask(task)
		return []Reply{{
			Text:      fmt.Sprintf("✅ Excellent, reminder set for %s.", due.Format(dueTimeFormat)),
			Sentiment: sentiment.Happy,
		}}
	}

	// Unparseable: re-prompt and hold state.
	return []Reply{{
		Text:      "When would you like to be reminded? (e.g., 'in 3 days', 'tomorrow at noon')",
		Sentiment: sentiment.Neutral,
	}}
}

func (c *Controller) commitTask(task *memory.Task) {
	c.profile.Tasks = append(c.profile.Tasks, task)
	if task.Due != nil {
		c.log.Append(activity.Task, fmt.Sprintf("Reminder set: '%s' for %s", task.Title, task.Due.Format(dueTimeFormat)))
	} else {
		c.log.Append(activity.Task, fmt.Sprintf("Task added: '%s' (no reminder).", task.Title))
	}
}

func (c *Controller) handleGetInfo(intent nlu.Intent, tag string) []Reply {
	c.profile.AddInterest(intent.Topic)
	c.log.Append(activity.Chat, fmt.Sprintf("Asked about %s.", intent.Topic))

	parts := make([]string, 0, 3)
	if prefix := c.selector.EmpathyPrefix(tag); prefix != "" {
		parts = append(parts, prefix)
	}
	if personal := c.selector.Personalize(c.profile, intent.Topic); personal != "" {
		parts = append(parts, personal)
	}
	parts = append(parts, c.selector.Topic(intent.Topic))

	return []Reply{{Text: strings.Join(parts, " "), Sentiment: tag}}
}

func (c *Controller) renderTaskList() string {
	pending := c.profile.PendingTasks()
	if len(pending) == 0 {
		return "You have no pending tasks or reminders."
	}
	var sb strings.Builder
	sb.WriteString("Here are your current reminders:")
	for _, t := range pending {
		due := "N/A"
		if t.Due != nil {
			due = t.Due.Format(dueTimeFormat)
		}
		fmt.Fprintf(&sb, "\n• %s (Due: %s)", t.Title, due)
	}
	return sb.String()
}

func (c *Controller) renderLogPage() string {
	entries := c.log.Entries()
	if len(entries) == 0 {
		return "📜 There is no activity to show yet."
	}

	page := activity.Page(entries, c.logPage, c.logPageSize)
	if len(page) == 0 {
		c.logPage = -1
		return "📜 You've reached the end of your activity log."
	}

	total := activity.PageCount(len(entries), c.logPageSize)
	var sb strings.Builder
	fmt.Fprintf(&sb, "📜 Activity Log (Page %d of %d):\n", c.logPage+1, total)
	for _, e := range page {
		sb.WriteString("\n" + e.String())
	}
	if (c.logPage+1)*c.logPageSize < len(entries) {
		sb.WriteString("\n\nType 'more' or 'next' to see the next page.")
	}
	return sb.String()
}

func (c *Controller) renderMemory() string {
	if len(c.profile.Facts) == 0 {
		return "You haven't told me anything personal about yourself yet."
	}
	keys := make([]string, 0, len(c.profile.Facts))
	for k := range c.profile.Facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("Here's what I remember about you:\n")
	for _, k := range keys {
		label := strings.ReplaceAll(k, "_", " ")
		label = strings.ToUpper(label[:1]) + label[1:]
		fmt.Fprintf(&sb, "\n• %s: %s", label, c.profile.Facts[k])
	}
	return sb.String()
}

func (c *Controller) startQuiz() []Reply {
	c.quizSession = quiz.NewSession(quiz.Bank(), c.quizLength, c.rng)
	c.log.Append(activity.Quiz, fmt.Sprintf("Quiz started with %d random questions.", c.quizSession.Len()))

	return []Reply{
		{Text: "🚀 Starting a random quiz! Type 'stop quiz' at any time to end it.", Sentiment: sentiment.Suggestion},
		c.renderQuestion(),
	}
}

func (c *Controller) renderQuestion() Reply {
	q := c.quizSession.Current()
	var sb strings.Builder
	fmt.Fprintf(&sb, "❓ Question %d/%d:\n%s\n", c.quizSession.Number(), c.quizSession.Len(), q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, opt)
	}
	sb.WriteString("\n\nType the number of your answer.")
	return Reply{Text: sb.String(), Sentiment: sentiment.Neutral}
}

func (c *Controller) handleQuizTurn(input string) []Reply {
	if c.classifier.Classify(input).Name == nlu.IntentStopQuiz {
		c.quizSession = nil
		c.log.Append(activity.Quiz, "Quiz stopped by user.")
		return []Reply{{Text: "Quiz stopped. Let me know when you want to start again!", Sentiment: sentiment.Neutral}}
	}

	optionCount := len(c.quizSession.Current().Options)
	invalid := Reply{
		Text:      fmt.Sprintf("Please enter a valid number between 1 and %d, or type 'stop quiz' to exit.", optionCount),
		Sentiment: sentiment.Error,
	}

	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return []Reply{invalid}
	}
	result, err := c.quizSession.Submit(choice)
	if err != nil {
		return []Reply{invalid}
	}

	var replies []Reply
	if result.Correct {
		replies = append(replies, Reply{Text: fmt.Sprintf("✅ Correct! %s", result.Explanation), Sentiment: sentiment.Happy})
	} else {
		replies = append(replies, Reply{
			Text:      fmt.Sprintf("❌ Incorrect. The correct answer was %d. %s", result.CorrectOption, result.Explanation),
			Sentiment: sentiment.Worried,
		})
	}

	if c.quizSession.Complete() {
		c.log.Append(activity.Quiz, fmt.Sprintf("Quiz finished with score: %d/%d", c.quizSession.Score(), c.quizSession.Len()))
		replies = append(replies, Reply{Text: c.quizSession.Summary(), Sentiment: sentiment.Summary})
		c.quizSession = nil
	} else {
		replies = append(replies, c.renderQuestion())
	}
	return replies
}

// Summary renders the session statistics block shown on demand and at exit.
func (c *Controller) Summary() string {
	elapsed := c.clock().Sub(c.profile.SessionStart).Round(time.Second)
	var sb strings.Builder
	fmt.Fprintf(&sb, "User: %s\n", c.profile.Name)
	fmt.Fprintf(&sb, "Interactions: %d\n", c.profile.InteractionCount)
	fmt.Fprintf(&sb, "Duration: %02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	if len(c.profile.Interests) > 0 {
		fmt.Fprintf(&sb, "\nTopics: %s", strings.Join(c.profile.Interests, ", "))
	}
	return sb.String()
}
