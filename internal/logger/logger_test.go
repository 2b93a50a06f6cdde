package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(Reset)

	t.Run("writes structured json", func(t *testing.T) {
		Reset()
		var buf bytes.Buffer
		log := Init(Options{Level: "debug", Output: &buf})
		log.Debug().Str("component", "test").Msg("hello")
		require.Contains(t, buf.String(), `"component":"test"`)
		require.Contains(t, buf.String(), `"message":"hello"`)
	})

	t.Run("first call wins", func(t *testing.T) {
		Reset()
		var first, second bytes.Buffer
		Init(Options{Output: &first})
		log := Init(Options{Output: &second})
		log.Info().Msg("routed")
		require.Contains(t, first.String(), "routed")
		require.Empty(t, second.String())
	})

	t.Run("level filters", func(t *testing.T) {
		Reset()
		var buf bytes.Buffer
		log := Init(Options{Level: "warn", Output: &buf})
		log.Info().Msg("dropped")
		log.Warn().Msg("kept")
		require.NotContains(t, buf.String(), "dropped")
		require.Contains(t, buf.String(), "kept")
	})
}

func TestGetWithoutInit(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	log := Get()
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	require.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, parseLevel(" warning "))
	require.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	require.Equal(t, zerolog.InfoLevel, parseLevel(""))
	require.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
