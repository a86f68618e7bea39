package subtitle

import (
	"fmt"
	"regexp"
	"strings"
)

var cueTagRegex = regexp.MustCompile(`<.*?>`)

// Caption is a single timed cue. Times are held in seconds with millisecond
// resolution; lines keep any cue markup exactly as read.
type Caption struct {
	// optional cue identifier, empty when absent
	Identifier string

	start float64
	end   float64
	lines []string
}

// NewCaption builds a caption from timestamp text. Empty timestamps default
// to 00:00:00.000.
func NewCaption(start, end string, lines ...string) (*Caption, error) {
	c := &Caption{lines: append([]string{}, lines...)}
	if err := c.SetStartFromText(orZero(start)); err != nil {
		return nil, err
	}
	if err := c.SetEndFromText(orZero(end)); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCaptionText is NewCaption with the text given as one string that is
// split on line breaks.
func NewCaptionText(start, end, text string) (*Caption, error) {
	return NewCaption(start, end, splitLines(text)...)
}

func orZero(ts string) string {
	if ts == "" {
		return zeroTimestamp
	}
	return ts
}

// SetStartFromText parses ts and uses it as the start time.
func (c *Caption) SetStartFromText(ts string) error {
	v, err := ParseTimestamp(ts)
	if err != nil {
		return err
	}
	c.start = v
	return nil
}

// SetEndFromText parses ts and uses it as the end time.
func (c *Caption) SetEndFromText(ts string) error {
	v, err := ParseTimestamp(ts)
	if err != nil {
		return err
	}
	c.end = v
	return nil
}

func (c *Caption) StartAsText() string { return FormatTimestamp(c.start) }
func (c *Caption) EndAsText() string   { return FormatTimestamp(c.end) }

func (c *Caption) StartSeconds() float64 { return c.start }
func (c *Caption) EndSeconds() float64   { return c.end }

func (c *Caption) SetStartSeconds(seconds float64) { c.start = seconds }
func (c *Caption) SetEndSeconds(seconds float64)   { c.end = seconds }

// Lines returns the caption lines. The slice is shared with the caption so
// edits through it are visible.
func (c *Caption) Lines() []string {
	return c.lines
}

// AddLine appends line verbatim.
func (c *Caption) AddLine(line string) {
	c.lines = append(c.lines, line)
}

// RawText joins the lines with newlines, cue tags included.
func (c *Caption) RawText() string {
	return strings.Join(c.lines, "\n")
}

// Text joins the lines with newlines and strips cue tags such as <i> or
// <c.yellow>.
func (c *Caption) Text() string {
	return cueTagRegex.ReplaceAllString(c.RawText(), "")
}

// SetText replaces every line with the lines of text.
func (c *Caption) SetText(text string) {
	c.lines = splitLines(text)
}

func (c *Caption) String() string {
	return fmt.Sprintf("%s %s %s",
		c.StartAsText(),
		c.EndAsText(),
		strings.ReplaceAll(c.Text(), "\n", `\n`),
	)
}

// Style holds the raw lines of a WebVTT STYLE block.
type Style struct {
	Lines []string
}

// Text returns the style lines trimmed and concatenated.
func (s *Style) Text() string {
	var sb strings.Builder
	for _, line := range s.Lines {
		sb.WriteString(strings.TrimSpace(line))
	}
	return sb.String()
}

// SetText replaces the style lines, splitting on newlines.
func (s *Style) SetText(text string) {
	s.Lines = strings.Split(text, "\n")
}

// contiguous run of non-blank lines from a WebVTT file
type block struct {
	lineNumber int
	lines      []string
}

// splitLines breaks text on \n, \r\n or \r. A trailing line break does not
// produce an empty final line.
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
