package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
	logFile string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "appleseed",
		Short: "appleseed exports decision-tree classifiers as source code",
		Long: `A tool to turn a fitted binary decision-tree classifier into nested
conditional statements in a target language, using bundled or custom
syntax presets`,
		SilenceUsage: true,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&config.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&config.logFile, "log-file", "", "append logs to this file instead of stderr")
	rootCmd.AddCommand(versionCmd(), exportCmd(config), languagesCmd(), presetCmd())
	return rootCmd
}
