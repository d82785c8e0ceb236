package common

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single", in: "obama", want: []string{"obama"}},
		{name: "inner spaces kept", in: "fake news, mainstream media", want: []string{"fake news", "mainstream media"}},
		{name: "empty items dropped", in: " ,obama,, trump ,", want: []string{"obama", "trump"}},
		{name: "empty", in: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		quiet   bool
		verbose bool
		want    zapcore.Level
	}{
		{name: "config level", level: "warn", want: zapcore.WarnLevel},
		{name: "verbose", level: "info", verbose: true, want: zapcore.DebugLevel},
		{name: "quiet wins", level: "info", quiet: true, verbose: true, want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.quiet, tt.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}

	_, err := NewLogger("loud", false, false)
	assert.Error(t, err)
}

func TestNewErrorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewErrorLogger(&buf)

	logger.Info("not shown")
	logger.Error("run failed", zap.Error(errors.New("no input files found matching condensed_*.json")))

	out := buf.String()
	assert.NotContains(t, out, "not shown")
	assert.Contains(t, out, "run failed")
	assert.Contains(t, out, "no input files found matching condensed_*.json")
}
