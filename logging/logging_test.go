package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      logrus.Level
	}{
		{-1, logrus.FatalLevel},
		{0, logrus.FatalLevel},
		{1, logrus.ErrorLevel},
		{2, logrus.WarnLevel},
		{3, logrus.InfoLevel},
		{4, logrus.DebugLevel},
		{5, logrus.TraceLevel},
		{9, logrus.TraceLevel},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Level(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNewText(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	logger, err := New(Config{Verbosity: 3, Format: "text", Output: &buf})
	require.NoError(err)

	logger.WithField("chain", "dev").Info("Built genesis")
	logger.Debug("hidden")

	require.Contains(buf.String(), "Built genesis")
	require.Contains(buf.String(), "chain=dev")
	require.NotContains(buf.String(), "hidden")
}

func TestNewJSON(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	logger, err := New(Config{Verbosity: 5, Format: "json", Output: &buf})
	require.NoError(err)

	logger.WithField("chain", "local_testnet").Trace("Resolving preset")

	var entry map[string]interface{}
	require.NoError(json.Unmarshal(buf.Bytes(), &entry))
	require.Equal("Resolving preset", entry["msg"])
	require.Equal("local_testnet", entry["chain"])
	require.Equal("trace", entry["level"])
}

func TestNewErrors(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	require.Error(t, err)

	_, err = New(Config{SentryDSN: "not a dsn"})
	require.Error(t, err)
}
