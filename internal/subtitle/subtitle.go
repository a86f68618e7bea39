package subtitle

import (
	"io"
)

// represents supported subtitle formats
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
	FormatSBV Format = "sbv"
)

// interface for writing captions in a target format
type Writer interface {
	Write(w io.Writer, captions []*Caption) error
}

// SupportedFormats lists the formats captions can be read from.
func SupportedFormats() []string {
	return []string{
		"WebVTT (.vtt)",
		"SubRip (.srt)",
		"YouTube SBV (.sbv)",
	}
}
