package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("ROUND_TIME", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DBPath != "guitarmaster.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "guitarmaster.db")
	}
	if cfg.RoundTime != 10 {
		t.Errorf("RoundTime = %d, want %d", cfg.RoundTime, 10)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_PATH", "/tmp/guitar.db")
	t.Setenv("ROUND_TIME", "15")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.DBPath != "/tmp/guitar.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/guitar.db")
	}
	if cfg.RoundTime != 15 {
		t.Errorf("RoundTime = %d, want %d", cfg.RoundTime, 15)
	}
}

func TestLoad_InvalidRoundTime(t *testing.T) {
	t.Setenv("ROUND_TIME", "abc")

	cfg := Load()

	if cfg.RoundTime != 10 {
		t.Errorf("RoundTime = %d, want %d (fallback)", cfg.RoundTime, 10)
	}
}
