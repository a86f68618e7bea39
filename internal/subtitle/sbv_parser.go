package subtitle

import (
	"regexp"
)

var sbvTimingRegex = regexp.MustCompile(
	`^\s*(\d+:\d{2}:\d{2}\.\d{3}),(\d+:\d{2}:\d{2}\.\d{3})`,
)

type sbvParser struct{}

func (sbvParser) validate(lines []string) error {
	if !sbvTimingRegex.MatchString(lines[0]) {
		return &MalformedFileError{Line: 1, Msg: "the file does not have a valid SBV format"}
	}
	return nil
}

func (sbvParser) isTimingLine(line string) bool {
	return sbvTimingRegex.MatchString(line)
}

func (sbvParser) parseTimingLine(line string) (string, string, error) {
	return matchTimingLine(sbvTimingRegex, line)
}

func (sbvParser) shouldSkipLine(string, *Caption) bool { return false }

func (sbvParser) ignoreEmptyCaptions() bool { return true }
