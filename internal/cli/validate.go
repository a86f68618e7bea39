package cli

import (
	"fmt"

	"github.com/mgpai22/webvtt/internal/subtitle"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [caption_file...]",
	Short: "Check caption files for structural errors",
	Long: `Parse each caption file and report either a summary or the first
problem found, with its line number.

Examples:
  webvtt validate captions.vtt
  webvtt validate *.srt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0

	for _, path := range args {
		doc, err := subtitle.Open(path)
		if err != nil {
			failed++
			logger.Warnw("Invalid caption file", "file", path, "error", err)
			fmt.Printf("FAIL %s: %v\n", path, err)
			continue
		}

		fmt.Printf("ok   %s: %d captions, %d styles, %ds\n",
			path,
			doc.Len(),
			len(doc.Styles()),
			doc.TotalLength(),
		)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
