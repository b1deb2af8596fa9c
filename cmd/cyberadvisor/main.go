package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nordlabs/cyberadvisor/internal/bus"
	"github.com/nordlabs/cyberadvisor/internal/channel"
	"github.com/nordlabs/cyberadvisor/internal/config"
	"github.com/nordlabs/cyberadvisor/internal/dialogue"
	"github.com/nordlabs/cyberadvisor/internal/gateway"
	"github.com/nordlabs/cyberadvisor/internal/store"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cyberadvisor",
	Short: "cyberadvisor - rule-based cybersecurity awareness assistant",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The chat REPL owns the terminal, keep structured logs out of it
		if cmd.Name() == "chat" {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the advisor in a local REPL",
	RunE:  runChat,
}

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the full gateway (channels + reminder sweep + archive)",
	RunE:  runGateway,
}

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize config and data directory",
	RunE:  runOnboard,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cyberadvisor status",
	RunE:  runStatus,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived conversation transcripts",
	RunE:  runHistory,
}

var (
	historySession string
	historyLimit   int
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "", "Session key to show (default: list sessions)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "Maximum lines to show")
	rootCmd.AddCommand(chatCmd, gatewayCmd, onboardCmd, statusCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ChatOptions carries injectable dependencies for the REPL (for testing)
type ChatOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Rand   *rand.Rand
	Clock  func() time.Time
}

func runChat(cmd *cobra.Command, args []string) error {
	return runChatWithOptions(ChatOptions{})
}

func runChatWithOptions(opts ChatOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	ctrl := dialogue.NewController(dialogue.Options{
		QuizLength:  cfg.Assistant.QuizLength,
		LogPageSize: cfg.Assistant.LogPageSize,
		Rand:        opts.Rand,
		Clock:       opts.Clock,
	})

	// The console channel doubles as the styled printer for the REPL
	printer := channel.NewConsoleChannelWithIO(cfg.Assistant, bus.NewMessageBus(1), strings.NewReader(""), stdout)
	emit := func(replies []dialogue.Reply) {
		for _, reply := range replies {
			_ = printer.Send(bus.OutboundMessage{Content: reply.Text, Sentiment: reply.Sentiment})
		}
	}

	emit(ctrl.Welcome())

	scanner := bufio.NewScanner(stdin)
	for {
		fmt.Fprint(stdout, "\nyou> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" || input == "bye" {
			break
		}

		emit(ctrl.HandleTurn(input))
	}

	fmt.Fprintf(stdout, "\n📊 Session Summary:\n%s\n", ctrl.Summary())
	fmt.Fprintln(stdout, "Goodbye! Stay cyber safe! 🛡️")
	return scanner.Err()
}

func runGateway(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gw, err := gateway.NewWithOptions(cfg, gateway.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("create gateway: %w", err)
	}

	return gw.Run(context.Background())
}

func runOnboard(cmd *cobra.Command, args []string) error {
	cfgDir := config.ConfigDir()
	cfgPath := config.ConfigPath()

	if err := os.MkdirAll(filepath.Join(cfgDir, "data"), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Created config: %s\n", cfgPath)
	} else {
		fmt.Printf("Config already exists: %s\n", cfgPath)
	}

	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run 'cyberadvisor chat' for a local conversation")
	fmt.Printf("  2. Edit %s to enable telegram or the web UI\n", cfgPath)
	fmt.Println("  3. Run 'cyberadvisor gateway' to serve all channels")

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Config: error (%v)\n", err)
		return nil
	}

	fmt.Printf("Config: %s\n", config.ConfigPath())
	fmt.Printf("Assistant: %s\n", cfg.Assistant.Name)
	fmt.Printf("Quiz length: %d\n", cfg.Assistant.QuizLength)
	fmt.Printf("Log page size: %d\n", cfg.Assistant.LogPageSize)
	fmt.Printf("Console: enabled=%v\n", cfg.Channels.Console.Enabled)
	fmt.Printf("Telegram: enabled=%v\n", cfg.Channels.Telegram.Enabled)
	fmt.Printf("WebUI: enabled=%v\n", cfg.Channels.WebUI.Enabled)
	fmt.Printf("Reminder sweep: enabled=%v interval=%s\n", cfg.Reminder.Enabled, cfg.Reminder.SweepInterval)

	if !cfg.Store.Enabled {
		fmt.Println("Archive: disabled")
		return nil
	}

	archive, err := openArchive(cfg)
	if err != nil {
		fmt.Printf("Archive: error (%v)\n", err)
		return nil
	}
	defer archive.Close()

	count, err := archive.CountTranscript("")
	if err != nil {
		fmt.Printf("Archive: error (%v)\n", err)
		return nil
	}
	fmt.Printf("Archive: %d transcript lines\n", count)

	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.Store.Enabled {
		return fmt.Errorf("archive is disabled in config")
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer archive.Close()

	if historySession == "" {
		sessions, err := archive.Sessions(20)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No archived sessions yet.")
			return nil
		}
		fmt.Println("Archived sessions (most recent first):")
		for _, s := range sessions {
			fmt.Printf("  %s\n", s)
		}
		fmt.Println("\nUse 'cyberadvisor history -s <session>' to view a transcript.")
		return nil
	}

	lines, err := archive.RecentTranscript(historySession, historyLimit)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if len(lines) == 0 {
		fmt.Printf("No transcript for session %q.\n", historySession)
		return nil
	}
	for _, line := range lines {
		fmt.Printf("[%s] %s: %s\n", line.CreatedAt.Format("2006-01-02 15:04:05"), line.Role, line.Content)
	}
	return nil
}

func openArchive(cfg *config.Config) (*store.Archive, error) {
	dbPath := strings.TrimSpace(cfg.Store.DBPath)
	if dbPath == "" {
		dbPath = filepath.Join(config.ConfigDir(), "data", "archive.db")
	}
	return store.NewArchive(dbPath)
}
