package eosim

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLogLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLogLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLogLevel("nonsense"))
}
