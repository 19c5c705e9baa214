package runconfig

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestBindFlagsMaterializesDefaults(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	v := viper.New()
	require.NoError(t, BindFlags(cmd, v))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, "long_bs", cfg.Strategy)
	require.Equal(t, 500, cfg.MaxEvals)
	require.Equal(t, int64(1), cfg.Seed)
}

func TestBindFlagsPicksUpExplicitFlagValue(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	v := viper.New()
	require.NoError(t, BindFlags(cmd, v))
	require.NoError(t, cmd.PersistentFlags().Set("strategy", "bfs"))
	require.NoError(t, cmd.PersistentFlags().Set("traces", "batch.npy"))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, "bfs", cfg.Strategy)
	require.Equal(t, "batch.npy", cfg.TracesPath)
}
