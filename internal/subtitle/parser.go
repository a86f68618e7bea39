package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textParser is implemented by each input format. The shared scan loop in
// scanCaptions drives it for the line oriented formats.
type textParser interface {
	validate(lines []string) error
	isTimingLine(line string) bool
	parseTimingLine(line string) (start, end string, err error)
	shouldSkipLine(line string, current *Caption) bool
	ignoreEmptyCaptions() bool
}

func readFileLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open caption file: %w", err)
	}
	return decodeLines(data)
}

func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read captions: %w", err)
	}
	return decodeLines(data)
}

// decodeLines decodes data as UTF-8, dropping a leading byte order mark, and
// splits it into lines without their terminators.
func decodeLines(data []byte) ([]string, error) {
	decoder := unicode.UTF8.NewDecoder()
	if bytes.HasPrefix(data, utf8BOM) {
		decoder = unicode.UTF8BOM.NewDecoder()
	}

	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode captions: %w", err)
	}

	lines := splitLines(string(decoded))
	if len(lines) == 0 {
		return nil, &MalformedFileError{Msg: "the file is empty"}
	}
	return lines, nil
}

func matchTimingLine(re *regexp.Regexp, line string) (string, string, error) {
	matches := re.FindStringSubmatch(line)
	if matches == nil {
		return "", "", &MalformedCaptionError{Msg: "invalid time format"}
	}
	return matches[1], matches[2], nil
}

// scanCaptions is the line scanning state machine shared by SRT and SBV. A
// timing line opens a caption, non-blank lines become its text and a blank
// line closes it.
func scanCaptions(p textParser, lines []string) ([]*Caption, error) {
	var captions []*Caption
	var current *Caption

	for i, line := range lines {
		lineNum := i + 1

		switch {
		case p.isTimingLine(line):
			if current != nil {
				return nil, &MalformedCaptionError{
					Line: lineNum,
					Msg:  "duplicate timing line",
				}
			}
			start, end, err := p.parseTimingLine(line)
			if err != nil {
				return nil, withLine(err, lineNum)
			}
			c, err := NewCaption(start, end)
			if err != nil {
				return nil, withLine(err, lineNum)
			}
			current = c

		case p.shouldSkipLine(line, current):
			continue

		case line != "":
			if current == nil {
				return nil, &MalformedCaptionError{
					Line: lineNum,
					Msg:  "caption missing timeframe",
				}
			}
			current.AddLine(line)

		default:
			if current == nil {
				continue
			}
			if len(current.lines) == 0 {
				if p.ignoreEmptyCaptions() {
					current = nil
					continue
				}
				return nil, &MalformedCaptionError{
					Line: lineNum,
					Msg:  "caption missing text",
				}
			}
			captions = append(captions, current)
			current = nil
		}
	}

	if current != nil && len(current.lines) > 0 {
		captions = append(captions, current)
	}

	return captions, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}
