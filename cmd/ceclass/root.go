package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stlrefine/ceclass/internal/runconfig"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:   "ceclass",
		Short: "Classify STL counterexamples against a refined-formula lattice",
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml/json/toml) read by Viper")

	if err := runconfig.BindFlags(root, v); err != nil {
		panic(err)
	}

	root.AddCommand(newRunCmd(v, &configFile))
	return root
}
