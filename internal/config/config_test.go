package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "FOODS_API_URL", "FOODS_API_KEY", "FOODS_API_TIMEOUT", "API_KEYS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.FoodsAPI.BaseURL != "http://localhost:3333" {
		t.Errorf("expected default foods api url, got %s", cfg.FoodsAPI.BaseURL)
	}
	if cfg.FoodsAPI.Timeout != 10 {
		t.Errorf("expected timeout 10, got %d", cfg.FoodsAPI.Timeout)
	}
	if len(cfg.Auth.APIKeys) != 0 {
		t.Errorf("expected auth disabled by default, got %v", cfg.Auth.APIKeys)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FOODS_API_URL", "https://foods.example.com/v1")
	t.Setenv("FOODS_API_KEY", "secret")
	t.Setenv("FOODS_API_TIMEOUT", "3")
	t.Setenv("API_KEYS", "one, two,,")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.FoodsAPI.BaseURL != "https://foods.example.com/v1" || cfg.FoodsAPI.APIKey != "secret" || cfg.FoodsAPI.Timeout != 3 {
		t.Errorf("unexpected foods api config: %+v", cfg.FoodsAPI)
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[0] != "one" || cfg.Auth.APIKeys[1] != "two" {
		t.Errorf("unexpected api keys: %v", cfg.Auth.APIKeys)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: "8080"},
			FoodsAPI: FoodsAPIConfig{BaseURL: "http://localhost:3333", Timeout: 10},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"missing api url", func(c *Config) { c.FoodsAPI.BaseURL = "" }, true},
		{"relative api url", func(c *Config) { c.FoodsAPI.BaseURL = "/foods" }, true},
		{"unsupported scheme", func(c *Config) { c.FoodsAPI.BaseURL = "ftp://foods" }, true},
		{"zero timeout", func(c *Config) { c.FoodsAPI.Timeout = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"upper case log level", func(c *Config) { c.LogLevel = "WARN" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
