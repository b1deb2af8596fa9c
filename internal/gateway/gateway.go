// Package gateway routes bus traffic to per-session dialogue controllers
// and runs the reminder sweep over every active session.
package gateway

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nordlabs/cyberadvisor/internal/bus"
	"github.com/nordlabs/cyberadvisor/internal/channel"
	"github.com/nordlabs/cyberadvisor/internal/config"
	"github.com/nordlabs/cyberadvisor/internal/dialogue"
	"github.com/nordlabs/cyberadvisor/internal/reminder"
	"github.com/nordlabs/cyberadvisor/internal/sentiment"
	"github.com/nordlabs/cyberadvisor/internal/store"
)

// Options for creating a Gateway
type Options struct {
	Logger     *zap.Logger
	SignalChan chan os.Signal // for testing signal handling
}

type Gateway struct {
	cfg      *config.Config
	bus      *bus.MessageBus
	channels *channel.ChannelManager
	sweeper  *reminder.Service
	archive  *store.Archive
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*dialogue.Controller

	signalChan chan os.Signal
}

// New creates a Gateway with default options
func New(cfg *config.Config) (*Gateway, error) {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions creates a Gateway with custom options for testing
func NewWithOptions(cfg *config.Config, opts Options) (*Gateway, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Gateway{
		cfg:        cfg,
		logger:     logger,
		sessions:   make(map[string]*dialogue.Controller),
		signalChan: opts.SignalChan,
	}

	g.bus = bus.NewMessageBus(config.DefaultBufSize)

	if cfg.Store.Enabled {
		dbPath := strings.TrimSpace(cfg.Store.DBPath)
		if dbPath == "" {
			dbPath = filepath.Join(config.ConfigDir(), "data", "archive.db")
		}
		archive, err := store.NewArchive(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		g.archive = archive
	}

	if cfg.Reminder.Enabled {
		sweeper, err := reminder.NewService(cfg.Reminder.SweepInterval)
		if err != nil {
			return nil, fmt.Errorf("create reminder service: %w", err)
		}
		sweeper.OnSweep = g.sweepReminders
		g.sweeper = sweeper
	}

	chMgr, err := channel.NewChannelManager(cfg, g.bus)
	if err != nil {
		return nil, fmt.Errorf("create channel manager: %w", err)
	}
	g.channels = chMgr

	return g, nil
}

// Channels exposes the channel manager so callers can register extra
// surfaces before Run.
func (g *Gateway) Channels() *channel.ChannelManager { return g.channels }

func (g *Gateway) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go g.bus.DispatchOutbound(ctx)

	if err := g.channels.StartAll(ctx); err != nil {
		return fmt.Errorf("start channels: %w", err)
	}
	g.logger.Info("channels started", zap.Strings("channels", g.channels.EnabledChannels()))

	if g.sweeper != nil {
		if err := g.sweeper.Start(ctx); err != nil {
			g.logger.Warn("reminder start failed", zap.Error(err))
		}
	}

	go g.processLoop(ctx)

	g.logger.Info("gateway running",
		zap.String("host", g.cfg.Gateway.Host),
		zap.Int("port", g.cfg.Gateway.Port))

	sigCh := g.signalChan
	if sigCh == nil {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	}
	<-sigCh

	g.logger.Info("shutting down")
	return g.Shutdown()
}

func (g *Gateway) processLoop(ctx context.Context) {
	for {
		select {
		case msg := <-g.bus.Inbound:
			g.handleInbound(msg)
		case <-ctx.Done():
			return
		}
	}
}

func (g *Gateway) handleInbound(msg bus.InboundMessage) {
	key := msg.SessionKey()
	g.logger.Debug("inbound",
		zap.String("session", key),
		zap.String("content", truncate(msg.Content, 80)))

	g.mu.Lock()
	defer g.mu.Unlock()

	ctrl, ok := g.sessions[key]
	if !ok {
		ctrl = dialogue.NewController(dialogue.Options{
			QuizLength:  g.cfg.Assistant.QuizLength,
			LogPageSize: g.cfg.Assistant.LogPageSize,
		})
		g.sessions[key] = ctrl
		g.logger.Info("session started", zap.String("session", key))
		g.archiveEvent(key, "system", "session started")
		for _, reply := range ctrl.Welcome() {
			g.send(msg.Channel, msg.ChatID, reply)
			g.archiveTranscript(key, "advisor", reply.Text, reply.Sentiment)
		}
	}

	g.archiveTranscript(key, "user", msg.Content, "")

	for _, reply := range ctrl.HandleTurn(msg.Content) {
		g.send(msg.Channel, msg.ChatID, reply)
		g.archiveTranscript(key, "advisor", reply.Text, reply.Sentiment)
	}
}

func (g *Gateway) send(channelName, chatID string, reply dialogue.Reply) {
	g.bus.Outbound <- bus.OutboundMessage{
		Channel:   channelName,
		ChatID:    chatID,
		Content:   reply.Text,
		Sentiment: reply.Sentiment,
	}
}

// sweepReminders fires reminders for tasks that came due since the last
// sweep, across all active sessions.
func (g *Gateway) sweepReminders(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, ctrl := range g.sessions {
		channelName, chatID, ok := splitSessionKey(key)
		if !ok {
			continue
		}
		for _, task := range ctrl.Profile().Tasks {
			if task.Completed || task.Reminded || task.Due == nil || task.Due.After(now) {
				continue
			}
			task.Reminded = true
			text := fmt.Sprintf("⏰ Reminder: '%s' is due now!", task.Title)
			g.send(channelName, chatID, dialogue.Reply{Text: text, Sentiment: sentiment.Suggestion})
			g.archiveEvent(key, "reminder", text)
			g.logger.Info("reminder fired",
				zap.String("session", key),
				zap.String("task", task.Title))
		}
	}
}

func (g *Gateway) archiveTranscript(session, role, content, sentimentTag string) {
	if g.archive == nil {
		return
	}
	if err := g.archive.AppendTranscript(session, role, content, sentimentTag); err != nil {
		g.logger.Warn("archive transcript failed", zap.Error(err))
	}
}

func (g *Gateway) archiveEvent(session, category, summary string) {
	if g.archive == nil {
		return
	}
	if err := g.archive.AppendEvent(session, category, summary); err != nil {
		g.logger.Warn("archive event failed", zap.Error(err))
	}
}

func (g *Gateway) Shutdown() error {
	if g.sweeper != nil {
		g.sweeper.Stop()
	}
	_ = g.channels.StopAll()
	if g.archive != nil {
		if err := g.archive.Close(); err != nil {
			g.logger.Warn("close archive failed", zap.Error(err))
		}
	}
	g.logger.Info("shutdown complete")
	return nil
}

func splitSessionKey(key string) (channelName, chatID string, ok bool) {
	idx := strings.Index(key, ":")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}
	return key[:idx], key[idx+1:], true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
