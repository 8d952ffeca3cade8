package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "movies.db" {
		t.Errorf("Database.Path = %q, want movies.db", cfg.Database.Path)
	}
	if cfg.Engine.MaxStrikes != 3 {
		t.Errorf("Engine.MaxStrikes = %d, want 3", cfg.Engine.MaxStrikes)
	}
	if cfg.Engine.TopStreakQuestions != 10 {
		t.Errorf("Engine.TopStreakQuestions = %d, want 10", cfg.Engine.TopStreakQuestions)
	}
	if cfg.Engine.GuessCooldown != 2 {
		t.Errorf("Engine.GuessCooldown = %d, want 2", cfg.Engine.GuessCooldown)
	}
	if cfg.Engine.MaxConsecutiveGuesses != 4 {
		t.Errorf("Engine.MaxConsecutiveGuesses = %d, want 4", cfg.Engine.MaxConsecutiveGuesses)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AKINATOR_DB_PATH", "catalogue.db")
	t.Setenv("AKINATOR_MAX_STRIKES", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "catalogue.db" {
		t.Errorf("Database.Path = %q, want catalogue.db", cfg.Database.Path)
	}
	if cfg.Engine.MaxStrikes != 5 {
		t.Errorf("Engine.MaxStrikes = %d, want 5", cfg.Engine.MaxStrikes)
	}
}

func TestValidateRejectsInvalid(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: ""},
		Engine: EngineConfig{
			MaxStrikes:            3,
			TopStreakQuestions:    10,
			GuessCooldown:         2,
			MaxConsecutiveGuesses: 4,
		},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for empty database path")
	}
}

func TestOverlayYAML(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/akinator.yaml"
	content := []byte("engine:\n  max_strikes: 7\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.MaxStrikes != 7 {
		t.Errorf("Engine.MaxStrikes = %d, want 7 (from YAML overlay)", cfg.Engine.MaxStrikes)
	}
}
