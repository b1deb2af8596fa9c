package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	DefaultAssistantName = "CyberAdvisor"
	DefaultQuizLength    = 10
	DefaultLogPageSize   = 5
	DefaultTypingDelayMs = 0
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 18890
	DefaultBufSize       = 100
	DefaultSweepInterval = "30s"
)

type Config struct {
	Assistant AssistantConfig `json:"assistant"`
	Channels  ChannelsConfig  `json:"channels"`
	Gateway   GatewayConfig   `json:"gateway"`
	Reminder  ReminderConfig  `json:"reminder"`
	Store     StoreConfig     `json:"store"`
}

type AssistantConfig struct {
	Name          string `json:"name"`
	QuizLength    int    `json:"quizLength"`
	LogPageSize   int    `json:"logPageSize"`
	TypingDelayMs int    `json:"typingDelayMs,omitempty"`
}

type ChannelsConfig struct {
	Console  ConsoleConfig  `json:"console"`
	Telegram TelegramConfig `json:"telegram"`
	WebUI    WebUIConfig    `json:"webui"`
}

type ConsoleConfig struct {
	Enabled bool `json:"enabled"`
}

type TelegramConfig struct {
	Enabled   bool     `json:"enabled"`
	Token     string   `json:"token"`
	AllowFrom []string `json:"allowFrom"`
	Proxy     string   `json:"proxy,omitempty"`
}

type WebUIConfig struct {
	Enabled   bool     `json:"enabled"`
	Port      int      `json:"port,omitempty"`
	AllowFrom []string `json:"allowFrom"`
}

type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type ReminderConfig struct {
	Enabled       bool   `json:"enabled"`
	SweepInterval string `json:"sweepInterval,omitempty"`
}

type StoreConfig struct {
	Enabled bool   `json:"enabled"`
	DBPath  string `json:"dbPath,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Assistant: AssistantConfig{
			Name:        DefaultAssistantName,
			QuizLength:  DefaultQuizLength,
			LogPageSize: DefaultLogPageSize,
		},
		Channels: ChannelsConfig{
			Console: ConsoleConfig{Enabled: true},
		},
		Gateway: GatewayConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Reminder: ReminderConfig{
			Enabled:       true,
			SweepInterval: DefaultSweepInterval,
		},
		Store: StoreConfig{Enabled: true},
	}
}

func ConfigDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".cyberadvisor")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if name := os.Getenv("CYBERADVISOR_NAME"); name != "" {
		cfg.Assistant.Name = name
	}
	if token := os.Getenv("CYBERADVISOR_TELEGRAM_TOKEN"); token != "" {
		cfg.Channels.Telegram.Token = token
	}
	if quizLen := os.Getenv("CYBERADVISOR_QUIZ_LENGTH"); quizLen != "" {
		if parsed, err := strconv.Atoi(quizLen); err == nil && parsed > 0 {
			cfg.Assistant.QuizLength = parsed
		}
	}
	if pageSize := os.Getenv("CYBERADVISOR_LOG_PAGE_SIZE"); pageSize != "" {
		if parsed, err := strconv.Atoi(pageSize); err == nil && parsed > 0 {
			cfg.Assistant.LogPageSize = parsed
		}
	}
	if dbPath := os.Getenv("CYBERADVISOR_DB_PATH"); dbPath != "" {
		cfg.Store.DBPath = dbPath
	}
	if enabled := os.Getenv("CYBERADVISOR_STORE_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			cfg.Store.Enabled = parsed
		}
	}
	if enabled := os.Getenv("CYBERADVISOR_REMINDER_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			cfg.Reminder.Enabled = parsed
		}
	}

	if cfg.Assistant.Name == "" {
		cfg.Assistant.Name = DefaultAssistantName
	}
	if cfg.Assistant.QuizLength <= 0 {
		cfg.Assistant.QuizLength = DefaultQuizLength
	}
	if cfg.Assistant.LogPageSize <= 0 {
		cfg.Assistant.LogPageSize = DefaultLogPageSize
	}
	if cfg.Reminder.SweepInterval == "" {
		cfg.Reminder.SweepInterval = DefaultSweepInterval
	}

	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(ConfigPath(), data, 0644)
}
