package cli

import (
	"github.com/avashk/vttcue/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vttcue",
	Short: "Inspect, validate, and convert WebVTT subtitle files",
	Long: `Vttcue is a CLI tool built around a strict streaming WebVTT parser.

It validates subtitle files against the WebVTT cue grammar, dumps
parsed cues for inspection, and converts between VTT and SRT.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}
		if cfg.Verbose && !cmd.Flags().Changed("verbose") {
			verbose = true
		}
		logger = logging.NewLogger(verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Path to TOML config file")
}
