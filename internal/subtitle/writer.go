package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// writes the captions in SRT form, numbering them from 1
func (w *SRTWriter) Write(out io.Writer, captions []*Caption) error {
	var sb strings.Builder
	for i, c := range captions {
		// index (1-based), parsed identifiers are not carried over
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTimestamp(c.start),
			formatSRTTimestamp(c.end)))

		writeLines(&sb, c.lines)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// writes the captions in WebVTT form
func (w *VTTWriter) Write(out io.Writer, captions []*Caption) error {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n")
	writeVTTCues(&sb, captions, true)

	_, err := io.WriteString(out, sb.String())
	return err
}

// WriteVTTCues appends cue blocks, each preceded by a blank line. Segment
// files reuse it after their own header.
func WriteVTTCues(sb *strings.Builder, captions []*Caption) {
	writeVTTCues(sb, captions, false)
}

func writeVTTCues(sb *strings.Builder, captions []*Caption, identifiers bool) {
	for _, c := range captions {
		sb.WriteString("\n")

		// optional cue identifier
		if identifiers && c.Identifier != "" {
			sb.WriteString(c.Identifier)
			sb.WriteString("\n")
		}

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(c.start),
			FormatTimestamp(c.end)))

		writeLines(sb, c.lines)
	}
}

func writeLines(sb *strings.Builder, lines []string) {
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT, nil
	case ".vtt":
		return FormatVTT, nil
	case ".sbv":
		return FormatSBV, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	case FormatSBV:
		return ".sbv"
	default:
		return ".vtt"
	}
}
