package obslog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	logger := New(Options{})
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewParsesExplicitLevel(t *testing.T) {
	logger := New(Options{Level: "debug"})
	require.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewFallsBackOnUnknownLevel(t *testing.T) {
	logger := New(Options{Level: "not-a-level"})
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewWritesJSONToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf})
	logger.Info().Str("strategy", "long_bs").Msg("run started")
	require.True(t, strings.Contains(buf.String(), `"strategy":"long_bs"`))
}
