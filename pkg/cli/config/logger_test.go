package config_test

import (
	"testing"

	"github.com/gedphotos/gedphotos/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		json    bool
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: warn",
			level:   "warn",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Valid level with JSON handler",
			level:   "info",
			json:    true,
			wantErr: false,
		},
		{
			name:    "Invalid level",
			level:   "verbose",
			wantErr: true,
		},
		{
			name:    "Empty level",
			level:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Logger{Level: tt.level, JSON: tt.json}
			logger, err := cfg.Configure()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Configure() expected error for level %q", tt.level)
				}
				return
			}
			if err != nil {
				t.Errorf("Configure() unexpected error: %v", err)
			}
			if logger == nil {
				t.Error("Configure() returned nil logger")
			}
		})
	}
}
