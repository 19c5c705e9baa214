// Package runconfig loads one classification run's configuration from
// Cobra flags, an optional config file, and defaults, composed through
// Viper's normal precedence (flags override file values override
// defaults).
package runconfig

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is everything cmd/ceclass needs to run one classification: a
// trace source, a depth-spec file, a strategy name, and the per-node
// synthesis budgets.
type Config struct {
	TracesPath string
	DepthPath  string
	Spec       string
	Strategy   string
	DT         float64
	MaxTime    time.Duration
	MaxEvals   int
	Seed       int64
	LogLevel   string
}

// BindFlags registers every Config field as a persistent flag on cmd and
// binds it into v, so flags, a loaded config file, and these defaults
// compose with Viper's precedence rules.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("traces", "", "path to a .npy, .json, or .csv trace batch")
	flags.String("depth", "", "path to a JSON depth-spec file")
	flags.String("spec", "", "specification label selecting a registered formula")
	flags.String("strategy", "long_bs", "bfs | no_prune | alw_mid | bs_random | long_bs")
	flags.Float64("dt", 1.0, "seconds per trace timestep")
	flags.Duration("max-time", 60*time.Second, "per-node synthesis wall-clock budget")
	flags.Int("max-evals", 500, "per-node synthesis evaluation budget")
	flags.Int64("seed", 1, "base RNG seed for random-path/evolution-strategy search")
	flags.String("log-level", "info", "zerolog level name")

	for _, name := range []string{"traces", "depth", "spec", "strategy", "dt", "max-time", "max-evals", "seed", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("runconfig: bind %s: %w", name, err)
		}
	}
	return nil
}

// Load reads a config file (if configFile is non-empty) into v, then
// materializes Config from the bound flags/file/defaults.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("runconfig: read config %s: %w", configFile, err)
		}
	}

	return Config{
		TracesPath: v.GetString("traces"),
		DepthPath:  v.GetString("depth"),
		Spec:       v.GetString("spec"),
		Strategy:   v.GetString("strategy"),
		DT:         v.GetFloat64("dt"),
		MaxTime:    v.GetDuration("max-time"),
		MaxEvals:   v.GetInt("max-evals"),
		Seed:       v.GetInt64("seed"),
		LogLevel:   v.GetString("log-level"),
	}, nil
}
