package sentry

import (
	"context"
	"testing"
	"time"
)

func TestConfigDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{name: "disabled", cfg: Config{}, want: ""},
		{name: "explicit DSN wins", cfg: Config{DSN: "https://k@o1.ingest.sentry.io/2", Token: "t", Host: "h"}, want: "https://k@o1.ingest.sentry.io/2"},
		{name: "better stack", cfg: Config{Token: "tok", Host: "errors.betterstack.com"}, want: "https://tok@errors.betterstack.com/1"},
		{name: "token without host", cfg: Config{Token: "tok"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.cfg.dsn()
			if (err != nil) != tt.wantErr {
				t.Fatalf("dsn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("dsn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitialize_MissingHost(t *testing.T) {
	if err := Initialize(Config{Token: "test-token"}); err == nil {
		t.Error("Expected error when host is missing")
	}
}

func TestInitialize_ValidConfig(t *testing.T) {
	// Sentry uses global state; these tests are not parallel.
	if err := Initialize(Config{}); err != nil {
		t.Errorf("Expected nil error for disabled config, got %v", err)
	}

	err := Initialize(Config{
		Token:       "test-token",
		Host:        "errors.betterstack.com",
		Environment: "test",
	})
	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if !IsEnabled() {
		t.Error("Expected IsEnabled() to return true after initialization")
	}

	// A nil error never produces an event.
	CaptureError(context.Background(), "catalog", nil)

	Flush(time.Second)
}
