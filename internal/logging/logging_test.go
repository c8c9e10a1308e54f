package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	type testRow struct {
		input  string
		expect zerolog.Level
	}

	testData := [...]testRow{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warning ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.WarnLevel},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			actual := ParseLevel(row.input)
			if actual != row.expect {
				t.Errorf("wrong level:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel)
	logger.Debug().Msg("hidden")
	logger.Info().Int("bytes", 12).Msg("shown")

	actual := buf.String()
	if strings.Contains(actual, "hidden") {
		t.Errorf("debug message was not filtered: %q", actual)
	}
	if !strings.Contains(actual, "shown") || !strings.Contains(actual, "bytes=12") {
		t.Errorf("wrong output: %q", actual)
	}
}
