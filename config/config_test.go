package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.JWTTTL != 4320*time.Hour {
		t.Fatalf("default JWT TTL: got %v want %v", cfg.JWTTTL, 4320*time.Hour)
	}
	if cfg.GoogleTimeout != 5*time.Second {
		t.Fatalf("default google timeout: got %v want %v", cfg.GoogleTimeout, 5*time.Second)
	}
	if cfg.Port != "3000" {
		t.Fatalf("default port: got %q", cfg.Port)
	}
}

func TestLoad_JWTSecretHasNoDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if cfg.JWTSecret != "" {
		t.Fatalf("expected empty JWT secret when unset, got %q", cfg.JWTSecret)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("DB_MAX_CONNS", "42")

	cfg := Load()
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("JWT secret: got %q", cfg.JWTSecret)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("JWT TTL: got %v", cfg.JWTTTL)
	}
	if cfg.DBMaxConns != 42 {
		t.Fatalf("DB max conns: got %d", cfg.DBMaxConns)
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "formgate",
		DBSSLMode:  "disable",
	}
	want := "postgres://u:p@db:5433/formgate?sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Fatalf("DSN: got %q want %q", got, want)
	}
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.example , ,http://b.example"}
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "http://a.example" || got[1] != "http://b.example" {
		t.Fatalf("origins: got %v", got)
	}
}
