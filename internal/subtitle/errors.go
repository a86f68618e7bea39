package subtitle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCaptions is returned when a caller hands over something that
	// is not a usable caption source.
	ErrInvalidCaptions = errors.New("the captions provided are invalid")

	// ErrMissingFilename is returned when saving a document that has neither
	// an output path nor a file it was read from.
	ErrMissingFilename = errors.New("no filename to save captions to")
)

// MalformedFileError reports a file level structural problem.
type MalformedFileError struct {
	Line int
	Msg  string
}

func (e *MalformedFileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed file: %s in line %d", e.Msg, e.Line)
	}
	return "malformed file: " + e.Msg
}

// MalformedCaptionError reports a problem with a single cue. Line is 1-based
// and zero when the source line is unknown.
type MalformedCaptionError struct {
	Line int
	Msg  string
}

func (e *MalformedCaptionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed caption: %s in line %d", e.Msg, e.Line)
	}
	return "malformed caption: " + e.Msg
}

// withLine returns a copy of err annotated with line, or err unchanged when
// it is not a caption error.
func withLine(err error, line int) error {
	var capErr *MalformedCaptionError
	if errors.As(err, &capErr) {
		return &MalformedCaptionError{Line: line, Msg: capErr.Msg}
	}
	return err
}
