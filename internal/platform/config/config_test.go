package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.AppName != "pet-board" {
		t.Fatalf("expected default app name, got %q", cfg.AppName)
	}
	if cfg.DBDSN != "" {
		t.Fatalf("expected empty db dsn by default, got %q", cfg.DBDSN)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PETBOARD_ADDR", ":9090")
	t.Setenv("PETBOARD_DB_DSN", "postgres://localhost/petboard")
	t.Setenv("PETBOARD_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr from env, got %q", cfg.Addr)
	}
	if cfg.DBDSN != "postgres://localhost/petboard" {
		t.Fatalf("expected dsn from env, got %q", cfg.DBDSN)
	}

	origins := cfg.Origins()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %#v", origins)
	}
}

func TestOrigins_Empty(t *testing.T) {
	cfg := Config{CORSAllowedOrigins: "   "}
	if got := cfg.Origins(); got != nil {
		t.Fatalf("expected nil origins, got %#v", got)
	}
}
