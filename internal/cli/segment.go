package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/webvtt/internal/segment"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [file]",
	Short: "Segment WebVTT captions for HTTP Live Streaming",
	Long: `Slice a WebVTT file into fixed duration segment files and write an
HLS playlist (prog_index.m3u8) that lists them.

Captions that run across a segment boundary are repeated in every segment
they overlap.

Examples:
  webvtt segment captions.vtt
  webvtt segment captions.vtt --output destination/directory
  webvtt segment captions.vtt --target-duration 30 --mpegts 800000`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().
		IntP("target-duration", "d", segment.DefaultSeconds, "Target duration of each segment in seconds")
	segmentCmd.Flags().
		Int("mpegts", segment.DefaultMPEGTS, "Presentation timestamp value")
	segmentCmd.Flags().
		StringP("output", "o", ".", "Output directory")

	_ = settings.BindPFlag("segment.target_duration", segmentCmd.Flags().Lookup("target-duration"))
	_ = settings.BindPFlag("segment.mpegts", segmentCmd.Flags().Lookup("mpegts"))
	_ = settings.BindPFlag("segment.output", segmentCmd.Flags().Lookup("output"))
}

func runSegment(cmd *cobra.Command, args []string) error {
	captionPath := args[0]

	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	opts := segment.Options{
		Seconds: cfg.Segment.TargetDuration,
		MPEGTS:  cfg.Segment.MPEGTS,
		Output:  cfg.Segment.Output,
	}

	logger.Infow("Segmenting captions",
		"input", captionPath,
		"output", opts.Output,
		"target_duration", opts.Seconds,
		"mpegts", opts.MPEGTS,
	)

	segmenter := segment.New(segment.WithLogger(logger))
	if err := segmenter.SegmentFile(captionPath, opts); err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	fmt.Printf("Captions segmented successfully: %s\n", displayPath(opts.Output))
	fmt.Printf("  Segments: %d\n", segmenter.TotalSegments())
	fmt.Printf("  Target duration: %ds\n", segmenter.Seconds())

	return nil
}

// displayPath returns the absolute form of path, or path itself when it
// cannot be resolved.
func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
