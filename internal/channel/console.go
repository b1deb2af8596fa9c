package channel

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nordlabs/cyberadvisor/internal/bus"
	"github.com/nordlabs/cyberadvisor/internal/config"
	"github.com/nordlabs/cyberadvisor/internal/sentiment"
)

const consoleChannelName = "console"

// One style per sentiment tag so the terminal mirrors the detected tone.
var sentimentStyles = map[string]lipgloss.Style{
	sentiment.Worried:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	sentiment.Frustrated:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	sentiment.Overwhelmed: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	sentiment.Happy:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	sentiment.Confident:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	sentiment.Curious:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	sentiment.Summary:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	sentiment.Suggestion:  lipgloss.NewStyle().Foreground(lipgloss.Color("43")),
	sentiment.Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
}

var consolePromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

// ConsoleChannel is the local REPL surface: one session, stdin in, styled
// stdout out.
type ConsoleChannel struct {
	BaseChannel
	in          io.Reader
	out         io.Writer
	typingDelay time.Duration
	cancel      context.CancelFunc
	done        chan struct{}
}

func NewConsoleChannel(cfg config.AssistantConfig, b *bus.MessageBus) *ConsoleChannel {
	return NewConsoleChannelWithIO(cfg, b, os.Stdin, os.Stdout)
}

// NewConsoleChannelWithIO creates a ConsoleChannel on explicit streams (for testing)
func NewConsoleChannelWithIO(cfg config.AssistantConfig, b *bus.MessageBus, in io.Reader, out io.Writer) *ConsoleChannel {
	return &ConsoleChannel{
		BaseChannel: NewBaseChannel(consoleChannelName, b, nil),
		in:          in,
		out:         out,
		typingDelay: time.Duration(cfg.TypingDelayMs) * time.Millisecond,
		done:        make(chan struct{}),
	}
}

func (c *ConsoleChannel) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			line := scanner.Text()
			if line == "" {
				continue
			}

			c.bus.Inbound <- bus.InboundMessage{
				Channel:   consoleChannelName,
				SenderID:  "local",
				ChatID:    "local",
				Content:   line,
				Timestamp: time.Now(),
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("[console] read error: %v", err)
		}
	}()

	log.Printf("[console] reading from stdin")
	return nil
}

func (c *ConsoleChannel) Send(msg bus.OutboundMessage) error {
	text := msg.Content
	if style, ok := sentimentStyles[msg.Sentiment]; ok {
		text = style.Render(text)
	}

	if c.typingDelay > 0 {
		time.Sleep(c.typingDelay)
	}

	_, err := fmt.Fprintf(c.out, "%s %s\n", consolePromptStyle.Render("advisor>"), text)
	return err
}

func (c *ConsoleChannel) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	log.Printf("[console] stopped")
	return nil
}

// Done is closed once stdin is exhausted.
func (c *ConsoleChannel) Done() <-chan struct{} { return c.done }
