package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabprep",
		Short: "tabprep prepares tabular record sets for model training",
		Long:  `A tool to encode, scale and split delimiter-separated record sets into model-ready train/val/test datasets`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), infoCmd(), preprocessCmd(config))
	return rootCmd
}
