package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stlrefine/ceclass/classify"
	"github.com/stlrefine/ceclass/internal/obslog"
	"github.com/stlrefine/ceclass/internal/runconfig"
	"github.com/stlrefine/ceclass/lattice"
	"github.com/stlrefine/ceclass/robustness/refkernel"
	"github.com/stlrefine/ceclass/tracedata"
)

func newRunCmd(v *viper.Viper, configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Parse a formula into a lattice and classify a trace batch against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := runconfig.Load(v, *configFile)
			if err != nil {
				return err
			}
			return runClassification(cmd, cfg)
		},
	}
}

func runClassification(cmd *cobra.Command, cfg runconfig.Config) error {
	logger := obslog.New(obslog.Options{Level: cfg.LogLevel})

	if cfg.TracesPath == "" {
		return fmt.Errorf("ceclass: --traces is required")
	}
	if cfg.DepthPath == "" {
		return fmt.Errorf("ceclass: --depth is required")
	}
	if cfg.Spec == "" {
		return fmt.Errorf("ceclass: --spec is required")
	}

	phi, err := buildFormula(cfg.Spec)
	if err != nil {
		return err
	}

	depth, err := loadDepthSpec(cfg.DepthPath)
	if err != nil {
		return fmt.Errorf("ceclass: load depth spec: %w", err)
	}

	batch, err := tracedata.Load(cfg.TracesPath)
	if err != nil {
		return fmt.Errorf("ceclass: load traces: %w", err)
	}

	logger.Info().
		Str("spec", cfg.Spec).
		Str("strategy", cfg.Strategy).
		Str("traces", cfg.TracesPath).
		Int("num_traces", batch.NumTraces).
		Msg("starting classification run")

	result, err := classify.Run(cmd.Context(), phi, depth, refkernel.StandardKernel{}, batch,
		classify.Strategy(cfg.Strategy),
		classify.Options{
			DT:              cfg.DT,
			MaxTimePerNode:  cfg.MaxTime,
			MaxEvalsPerNode: cfg.MaxEvals,
			Seed:            cfg.Seed,
		})
	if err != nil {
		logger.Error().Err(err).Msg("classification run failed")
		return err
	}

	logger.Info().
		Int("num_classes", result.NumClasses).
		Int("num_covered", result.NumCovered).
		Int("num_synth_calls", result.NumSynthCalls).
		Dur("time_split", result.TimeSplit).
		Dur("time_class", result.TimeClass).
		Dur("time_total", result.TimeTotal).
		Msg("classification run complete")

	return json.NewEncoder(os.Stdout).Encode(result)
}

func loadDepthSpec(path string) (lattice.DepthSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return lattice.DepthSpec{}, err
	}
	defer f.Close()

	var spec lattice.DepthSpec
	if err := json.NewDecoder(f).Decode(&spec); err != nil {
		return lattice.DepthSpec{}, err
	}
	return spec, nil
}
