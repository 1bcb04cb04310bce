package config

import (
	"os"
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   time.Duration
		want  time.Duration
	}{
		{name: "valid duration", value: "7s", def: time.Second, want: 7 * time.Second},
		{name: "invalid duration falls back", value: "not-a-duration", def: 3 * time.Second, want: 3 * time.Second},
		{name: "unset falls back", value: "", def: 2 * time.Second, want: 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_DURATION_VAR"
			if tt.value != "" {
				if err := os.Setenv(key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() { _ = os.Unsetenv(key) }()
			}

			if got := mustDuration(key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.AdminPartition != "links.xlsx" {
		t.Errorf("AdminPartition = %v, want links.xlsx", cfg.AdminPartition)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
}
