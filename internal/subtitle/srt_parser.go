package subtitle

import (
	"regexp"
	"strings"
)

var srtTimingRegex = regexp.MustCompile(
	`^\s*(\d+:\d{2}:\d{2},\d{3})\s*-->\s*(\d+:\d{2}:\d{2},\d{3})`,
)

type srtParser struct{}

func (srtParser) validate(lines []string) error {
	if len(lines) < 2 || lines[0] != "1" || !srtTimingRegex.MatchString(lines[1]) {
		return &MalformedFileError{Msg: "the file does not have a valid SRT format"}
	}
	return nil
}

func (srtParser) isTimingLine(line string) bool {
	return strings.Contains(line, timingSeparator)
}

func (srtParser) parseTimingLine(line string) (string, string, error) {
	return matchTimingLine(srtTimingRegex, line)
}

// sequence numbers only appear between captions
func (srtParser) shouldSkipLine(line string, current *Caption) bool {
	return current == nil && isDigits(line)
}

func (srtParser) ignoreEmptyCaptions() bool { return true }
