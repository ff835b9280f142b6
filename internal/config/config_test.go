package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "SERVER_PORT")
	unsetEnvWithCleanup(t, "APP_ENV")
	unsetEnvWithCleanup(t, "ACCESS_TOKEN_EXPIRE_MINUTES")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.ServerPort)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("expected default env development, got %q", cfg.AppEnv)
	}
	if cfg.AccessTokenExpireMinutes != 30 {
		t.Fatalf("expected default token expiry 30, got %d", cfg.AccessTokenExpireMinutes)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "SERVER_PORT", "9090")
	setEnvWithCleanup(t, "JWT_SECRET", "super-secret")
	setEnvWithCleanup(t, "ACCESS_TOKEN_EXPIRE_MINUTES", "15")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.ServerPort)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Fatalf("expected JWT secret from env, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL() != 15*time.Minute {
		t.Fatalf("expected 15m token TTL, got %s", cfg.TokenTTL())
	}
}

func TestOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "empty allows all",
			value: "",
			want:  []string{"*"},
		},
		{
			name:  "single origin",
			value: "https://app.oriemcapital.com",
			want:  []string{"https://app.oriemcapital.com"},
		},
		{
			name:  "comma separated with spaces",
			value: " https://app.oriemcapital.com , http://localhost:3000 ,",
			want:  []string{"https://app.oriemcapital.com", "http://localhost:3000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AllowedOrigins: tt.value}
			got := cfg.Origins()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
		}
	})
}
