package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "blog_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.MongoDB.Database != "blog_test" {
		t.Fatalf("MongoDB.Database = %q, want %q", cfg.MongoDB.Database, "blog_test")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("RATE_LIMIT_RPS")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("Server.Port = %q, want default %q", cfg.Server.Port, "5000")
	}
	if cfg.RateLimit.RPS != 25 {
		t.Fatalf("RateLimit.RPS = %v, want default 25", cfg.RateLimit.RPS)
	}
}
