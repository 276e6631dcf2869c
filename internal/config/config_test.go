package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "job-portal")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET_KEY")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Auth.TokenExpiresIn != 7*24*time.Hour {
		t.Fatalf("unexpected token lifetime: %v", cfg.Auth.TokenExpiresIn)
	}
	if cfg.Auth.CookieExpireDays != 7 {
		t.Fatalf("unexpected cookie expiry: %d", cfg.Auth.CookieExpireDays)
	}
	if cfg.Auth.CookieSecure {
		t.Fatalf("cookie must not default to secure")
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.Database.ConnectTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "1h")
	t.Setenv("COOKIE_EXPIRE", "30")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Auth.TokenExpiresIn != time.Hour {
		t.Fatalf("unexpected token lifetime: %v", cfg.Auth.TokenExpiresIn)
	}
	if cfg.Auth.CookieExpireDays != 30 {
		t.Fatalf("unexpected cookie expiry: %d", cfg.Auth.CookieExpireDays)
	}
	if !cfg.Auth.CookieSecure {
		t.Fatalf("expected secure cookie")
	}
}

func TestLoad_BadOptionalValuesFallBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "soon")
	t.Setenv("COOKIE_EXPIRE", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Auth.TokenExpiresIn != 7*24*time.Hour {
		t.Fatalf("bad duration must fall back to default")
	}
	if cfg.Auth.CookieExpireDays != 7 {
		t.Fatalf("bad int must fall back to default")
	}
}
