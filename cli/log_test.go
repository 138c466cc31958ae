package cli

import (
	"testing"

	"github.com/ardnew/pbxsetting/log"
)

// TestLogConfig_Scan is not parallel because scan configures the default
// logger.
func TestLogConfig_Scan(t *testing.T) {
	saved := log.Default()
	t.Cleanup(func() { log.SetDefault(saved) })

	tests := []struct {
		name       string
		args       []string
		wantLevel  log.Level
		wantFormat log.Format
		wantPretty bool
		wantCaller bool
	}{
		{
			name:       "separate_values",
			args:       []string{"parse", "--log-level", "debug", "--log-format", "json", "$(A)"},
			wantLevel:  log.LevelDebug,
			wantFormat: log.FormatJSON,
			wantPretty: true,
		},
		{
			name:       "assigned_values",
			args:       []string{"--log-level=trace", "--log-caller", "--no-log-pretty"},
			wantLevel:  log.LevelTrace,
			wantFormat: log.FormatText,
			wantCaller: true,
		},
		{
			name:       "assigned_booleans",
			args:       []string{"--log-pretty=false", "--no-log-caller=false"},
			wantLevel:  log.LevelInfo,
			wantFormat: log.FormatText,
			wantCaller: true,
		},
		{
			name:       "value_missing",
			args:       []string{"--log-level", "--log-format=json"},
			wantLevel:  log.LevelInfo,
			wantFormat: log.FormatJSON,
			wantPretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetDefault(log.Make(nil))

			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Pretty != tt.wantPretty {
				t.Errorf("Pretty = %v, want %v", f.Pretty, tt.wantPretty)
			}

			if f.Caller != tt.wantCaller {
				t.Errorf("Caller = %v, want %v", f.Caller, tt.wantCaller)
			}

			if got := log.Default().Level(); got != tt.wantLevel {
				t.Errorf("default Level() = %v, want %v", got, tt.wantLevel)
			}

			if got := log.Default().Format(); got != tt.wantFormat {
				t.Errorf("default Format() = %v, want %v", got, tt.wantFormat)
			}
		})
	}
}

func TestBoolFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		assigned bool
		want     bool
		wantOK   bool
	}{
		{"--log-pretty", "", false, true, true},
		{"--no-log-pretty", "", false, false, true},
		{"--log-pretty", "false", true, false, true},
		{"--no-log-pretty", "false", true, true, true},
		{"--log-pretty", "maybe", true, false, false},
	}

	for _, tt := range tests {
		got, ok := boolFlag(tt.name, tt.value, tt.assigned)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("boolFlag(%q, %q, %v) = (%v, %v), want (%v, %v)",
				tt.name, tt.value, tt.assigned, got, ok, tt.want, tt.wantOK)
		}
	}
}
