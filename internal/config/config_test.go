package config

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("http addr = %q", cfg.HTTP.Addr)
	}
	if !strings.Contains(cfg.MySQL.DSN, "parseTime=true") {
		t.Errorf("mysql dsn missing parseTime: %q", cfg.MySQL.DSN)
	}
	// the migrate command Execs the whole migration file at once and needs
	// the multi-statement capability on the shipped DSN
	if !strings.Contains(cfg.MySQL.DSN, "multiStatements=true") {
		t.Errorf("mysql dsn missing multiStatements: %q", cfg.MySQL.DSN)
	}
	if cfg.RateLimit.RPS != 100 {
		t.Errorf("rate_limit.rps = %d", cfg.RateLimit.RPS)
	}
	if cfg.Events.Topic != "radius.events" || cfg.Events.Workers != 8 {
		t.Errorf("events defaults = %+v", cfg.Events)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("http addr = %q, want embedded default", cfg.HTTP.Addr)
	}
}
