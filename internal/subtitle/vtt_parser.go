package subtitle

import (
	"regexp"
	"strings"
)

const timingSeparator = "-->"

var (
	vttTimingRegex = regexp.MustCompile(
		`^\s*((?:\d+:)?\d{2}:\d{2}[.,]\d{3})\s*-->\s*((?:\d+:)?\d{2}:\d{2}[.,]\d{3})`,
	)
	vttCommentRegex = regexp.MustCompile(`^NOTE(?:\s.+|$)`)
	vttStyleRegex   = regexp.MustCompile(`^STYLE[ \t]*$`)
)

// blockParser is implemented by formats that classify blank line delimited
// blocks instead of scanning line by line.
type blockParser interface {
	parseBlocks(lines []string) ([]*Caption, []*Style, error)
}

type vttParser struct{}

func (vttParser) validate(lines []string) error {
	if !strings.HasPrefix(lines[0], "WEBVTT") {
		return &MalformedFileError{Line: 1, Msg: "missing WEBVTT signature"}
	}
	return nil
}

func (vttParser) isTimingLine(line string) bool {
	return strings.Contains(line, timingSeparator)
}

func (vttParser) parseTimingLine(line string) (string, string, error) {
	return matchTimingLine(vttTimingRegex, line)
}

func (vttParser) shouldSkipLine(string, *Caption) bool { return false }

func (vttParser) ignoreEmptyCaptions() bool { return false }

// computeBlocks groups lines into blocks of non-blank lines. The first block
// holds the signature and header lines and is dropped.
func computeBlocks(lines []string) []*block {
	var blocks []*block
	var current *block

	for i, line := range lines {
		if line == "" {
			current = nil
			continue
		}
		if current == nil {
			current = &block{lineNumber: i + 1}
			blocks = append(blocks, current)
		}
		current.lines = append(current.lines, line)
	}

	if len(blocks) == 0 {
		return nil
	}
	return blocks[1:]
}

func (p vttParser) isCueBlock(b *block) bool {
	for _, line := range b.lines[:min(2, len(b.lines))] {
		if p.isTimingLine(line) {
			return true
		}
	}
	return false
}

func isCommentBlock(b *block) bool {
	return vttCommentRegex.MatchString(b.lines[0])
}

func isStyleBlock(b *block) bool {
	return vttStyleRegex.MatchString(b.lines[0])
}

func (p vttParser) parseBlocks(lines []string) ([]*Caption, []*Style, error) {
	var captions []*Caption
	var styles []*Style

	for _, b := range computeBlocks(lines) {
		switch {
		case p.isCueBlock(b):
			c, err := p.parseCueBlock(b)
			if err != nil {
				return nil, nil, err
			}
			captions = append(captions, c)

		case isCommentBlock(b):
			continue

		case isStyleBlock(b):
			if len(captions) > 0 {
				return nil, nil, &MalformedFileError{
					Line: b.lineNumber,
					Msg:  "style block must precede all cues",
				}
			}
			styles = append(styles, &Style{
				Lines: append([]string{}, b.lines[1:]...),
			})

		case len(b.lines) == 1:
			return nil, nil, &MalformedCaptionError{
				Line: b.lineNumber,
				Msg:  "standalone cue identifier",
			}

		default:
			return nil, nil, &MalformedCaptionError{
				Line: b.lineNumber + 1,
				Msg:  "missing timing cue",
			}
		}
	}

	return captions, styles, nil
}

func (p vttParser) parseCueBlock(b *block) (*Caption, error) {
	c := &Caption{}
	timingLine := 0

	for i, line := range b.lines {
		lineNum := b.lineNumber + i

		switch {
		case p.isTimingLine(line):
			if timingLine != 0 {
				return nil, &MalformedCaptionError{
					Line: lineNum,
					Msg:  "duplicate timing line",
				}
			}
			start, end, err := p.parseTimingLine(line)
			if err != nil {
				return nil, withLine(err, lineNum)
			}
			if err := c.SetStartFromText(start); err != nil {
				return nil, withLine(err, lineNum)
			}
			if err := c.SetEndFromText(end); err != nil {
				return nil, withLine(err, lineNum)
			}
			timingLine = lineNum

		case i == 0:
			c.Identifier = line

		default:
			c.AddLine(line)
		}
	}

	if len(c.lines) == 0 && !p.ignoreEmptyCaptions() {
		return nil, &MalformedCaptionError{
			Line: timingLine,
			Msg:  "caption missing text",
		}
	}

	return c, nil
}
