package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/webvtt/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [caption_file]",
	Short: "Convert captions to WebVTT or SRT",
	Long: `Convert a WebVTT, SRT or SBV file to WebVTT or SRT.

The input format is taken from the file extension. Without --output the
converted file is written next to the input with the new extension. When
--output names a directory the input file name is kept.

Examples:
  webvtt convert captions.srt
  webvtt convert captions.sbv --to srt
  webvtt convert captions.vtt --to srt -o out/`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("to", "t", "vtt", "Output caption format (vtt, srt)")
	convertCmd.Flags().
		StringP("output", "o", "", "Output file or directory")
}

func runConvert(cmd *cobra.Command, args []string) error {
	captionPath := args[0]

	to, _ := cmd.Flags().GetString("to")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	format, err := parseOutputFormat(to)
	if err != nil {
		return err
	}

	logger.Infow("Parsing caption file", "input", captionPath)
	doc, err := subtitle.Open(captionPath)
	if err != nil {
		return fmt.Errorf("failed to parse caption file: %w", err)
	}

	logger.Infow("Parsed caption file",
		"captions", doc.Len(),
		"styles", len(doc.Styles()),
		"format", doc.Format,
	)

	if format == subtitle.FormatSRT {
		err = doc.SaveAsSRT(outputPath)
	} else {
		err = doc.Save(outputPath)
	}
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Captions converted successfully: %s\n", doc.File)
	fmt.Printf("  Captions: %d\n", doc.Len())

	return nil
}

// parseOutputFormat maps the --to flag onto a writable format.
func parseOutputFormat(to string) (subtitle.Format, error) {
	switch strings.ToLower(strings.TrimSpace(to)) {
	case "vtt", "webvtt":
		return subtitle.FormatVTT, nil
	case "srt":
		return subtitle.FormatSRT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use vtt or srt", to)
	}
}
