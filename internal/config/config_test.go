package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Assistant.Name != DefaultAssistantName {
		t.Errorf("name = %q, want %q", cfg.Assistant.Name, DefaultAssistantName)
	}
	if cfg.Assistant.QuizLength != DefaultQuizLength {
		t.Errorf("quizLength = %d, want %d", cfg.Assistant.QuizLength, DefaultQuizLength)
	}
	if cfg.Assistant.LogPageSize != DefaultLogPageSize {
		t.Errorf("logPageSize = %d, want %d", cfg.Assistant.LogPageSize, DefaultLogPageSize)
	}
	if cfg.Gateway.Host != DefaultHost {
		t.Errorf("host = %q, want %q", cfg.Gateway.Host, DefaultHost)
	}
	if cfg.Gateway.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Gateway.Port, DefaultPort)
	}
	if !cfg.Channels.Console.Enabled {
		t.Error("console channel should be enabled by default")
	}
	if cfg.Channels.Telegram.Enabled {
		t.Error("telegram should be disabled by default")
	}
	if !cfg.Reminder.Enabled {
		t.Error("reminder sweep should be enabled by default")
	}
	if cfg.Reminder.SweepInterval != DefaultSweepInterval {
		t.Errorf("sweepInterval = %q, want %q", cfg.Reminder.SweepInterval, DefaultSweepInterval)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CYBERADVISOR_NAME", "")
	t.Setenv("CYBERADVISOR_QUIZ_LENGTH", "")
	t.Setenv("CYBERADVISOR_LOG_PAGE_SIZE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Assistant.Name != DefaultAssistantName {
		t.Errorf("expected default name %q, got %q", DefaultAssistantName, cfg.Assistant.Name)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CYBERADVISOR_NAME", "")
	t.Setenv("CYBERADVISOR_QUIZ_LENGTH", "")
	t.Setenv("CYBERADVISOR_TELEGRAM_TOKEN", "")

	cfgDir := filepath.Join(tmpDir, ".cyberadvisor")
	os.MkdirAll(cfgDir, 0755)

	testCfg := map[string]any{
		"assistant": map[string]any{
			"name":        "SecMentor",
			"quizLength":  5,
			"logPageSize": 3,
		},
		"channels": map[string]any{
			"telegram": map[string]any{
				"enabled": true,
				"token":   "file-token",
			},
		},
	}
	data, _ := json.Marshal(testCfg)
	os.WriteFile(filepath.Join(cfgDir, "config.json"), data, 0644)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Assistant.Name != "SecMentor" {
		t.Errorf("name = %q, want SecMentor", cfg.Assistant.Name)
	}
	if cfg.Assistant.QuizLength != 5 {
		t.Errorf("quizLength = %d, want 5", cfg.Assistant.QuizLength)
	}
	if cfg.Assistant.LogPageSize != 3 {
		t.Errorf("logPageSize = %d, want 3", cfg.Assistant.LogPageSize)
	}
	if !cfg.Channels.Telegram.Enabled {
		t.Error("telegram should be enabled from file")
	}
	if cfg.Channels.Telegram.Token != "file-token" {
		t.Errorf("token = %q, want file-token", cfg.Channels.Telegram.Token)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CYBERADVISOR_NAME", "EnvAdvisor")
	t.Setenv("CYBERADVISOR_TELEGRAM_TOKEN", "env-token")
	t.Setenv("CYBERADVISOR_QUIZ_LENGTH", "7")
	t.Setenv("CYBERADVISOR_DB_PATH", "/tmp/env.db")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Assistant.Name != "EnvAdvisor" {
		t.Errorf("name = %q, want EnvAdvisor", cfg.Assistant.Name)
	}
	if cfg.Channels.Telegram.Token != "env-token" {
		t.Errorf("token = %q, want env-token", cfg.Channels.Telegram.Token)
	}
	if cfg.Assistant.QuizLength != 7 {
		t.Errorf("quizLength = %d, want 7", cfg.Assistant.QuizLength)
	}
	if cfg.Store.DBPath != "/tmp/env.db" {
		t.Errorf("dbPath = %q, want /tmp/env.db", cfg.Store.DBPath)
	}
}

func TestLoadConfig_InvalidEnvIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CYBERADVISOR_QUIZ_LENGTH", "not-a-number")
	t.Setenv("CYBERADVISOR_LOG_PAGE_SIZE", "-3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Assistant.QuizLength != DefaultQuizLength {
		t.Errorf("quizLength = %d, want default %d", cfg.Assistant.QuizLength, DefaultQuizLength)
	}
	if cfg.Assistant.LogPageSize != DefaultLogPageSize {
		t.Errorf("logPageSize = %d, want default %d", cfg.Assistant.LogPageSize, DefaultLogPageSize)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("CYBERADVISOR_NAME", "")
	t.Setenv("CYBERADVISOR_QUIZ_LENGTH", "")

	cfg := DefaultConfig()
	cfg.Assistant.Name = "RoundTrip"
	cfg.Channels.WebUI.Enabled = true
	cfg.Channels.WebUI.Port = 19999

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if loaded.Assistant.Name != "RoundTrip" {
		t.Errorf("name = %q, want RoundTrip", loaded.Assistant.Name)
	}
	if !loaded.Channels.WebUI.Enabled || loaded.Channels.WebUI.Port != 19999 {
		t.Errorf("webui config lost: %+v", loaded.Channels.WebUI)
	}
}

func TestConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	want := filepath.Join(tmpDir, ".cyberadvisor", "config.json")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}
