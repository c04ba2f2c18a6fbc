package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.MaxRetries != 3 {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
	if cfg.Audio.MaxBytes != 50<<20 {
		t.Errorf("Audio.MaxBytes = %d", cfg.Audio.MaxBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	// cleanenv exports dotenv values into the process environment.
	t.Cleanup(func() {
		for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "LLM_PROVIDER", "STT_PROVIDER"} {
			os.Unsetenv(k)
		}
	})
	content := "PORT=9001\nDB_DRIVER=sqlite\nDB_PATH=/tmp/x.db\nLLM_PROVIDER=canned\nSTT_PROVIDER=canned\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9001 || cfg.Database.Driver != DriverSQLite {
		t.Errorf("cfg = %+v", cfg)
	}
	if got := cfg.Database.DSN(); got != "/tmp/x.db" {
		t.Errorf("DSN() = %q", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := &Config{
		Port:     8000,
		Database: DatabaseConfig{Driver: DriverPostgres, Host: "db", Name: "interview"},
		LLM:      LLMConfig{Provider: ProviderOpenAI, STTProvider: ProviderGemini, RPS: 1, Burst: 1},
		Audio:    AudioConfig{MaxBytes: 1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"OPENAI_API_KEY", "GOOGLE_API_KEY"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestPostgresDSN(t *testing.T) {
	d := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "p@ss",
		Name:     "interview",
		SSLMode:  "disable",
	}
	want := "postgres://app:p%40ss@db:5432/interview?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
