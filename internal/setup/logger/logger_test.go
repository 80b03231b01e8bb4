package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"shouting", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(tt.level, false)
			if l.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %s, want %s", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info", false)

	l.Debug().Msg("hidden")
	l.Info().Int("day", 7).Msg("solved")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
	if !strings.Contains(out, `"day":7`) || !strings.Contains(out, `"message":"solved"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}
