package cli

import (
	"github.com/mgpai22/webvtt/internal/config"
	"github.com/mgpai22/webvtt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
	settings   = config.New()
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "webvtt",
	Short: "Parse, convert and segment WebVTT, SRT and SBV captions",
	Long: `webvtt is a CLI tool for working with text based caption files.

It reads WebVTT, SubRip and YouTube SBV captions, reports line numbered
diagnostics for malformed input, converts between formats and slices
captions into fixed duration segments for HTTP Live Streaming.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(settings, configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.NewLogger(cfg.Log.Verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "Config file (default ./webvtt.yaml if present)")

	_ = settings.BindPFlag("log.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
