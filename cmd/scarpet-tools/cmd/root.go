package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg    *Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "scarpet-tools",
	Short: "Tooling for scarpet scripts",
	Long: `scarpet-tools works with scarpet source files (.sc, .scl).

Commands:
  tokens   - Dump the token stream of a script
  check    - Scan scripts and report problems
  repl     - Interactive token scanner
  version  - Print the version`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		logger = newLogger(verbose)
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error("command failed", "error", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./scarpet-tools.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
