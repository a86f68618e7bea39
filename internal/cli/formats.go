package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/webvtt/internal/config"
	"github.com/mgpai22/webvtt/internal/subtitle"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the caption formats that can be read",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range subtitle.SupportedFormats() {
			fmt.Println(f)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Dump(os.Stdout, cfg)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
}
