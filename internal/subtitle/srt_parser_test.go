package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromSRTSample(t *testing.T) {
	doc, err := FromSRT("testdata/sample.srt")
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	if doc.Len() != 5 {
		t.Fatalf("expected 5 captions, got %d", doc.Len())
	}
	if doc.Format != FormatSRT {
		t.Errorf("expected format srt, got %s", doc.Format)
	}
	if doc.TotalLength() != 23 {
		t.Errorf("expected total length 23, got %d", doc.TotalLength())
	}

	c := doc.Caption(2)
	if c.StartAsText() != "00:00:11.890" || c.EndAsText() != "00:00:16.320" {
		t.Errorf("caption 2: unexpected timing %s --> %s", c.StartAsText(), c.EndAsText())
	}
	if doc.Caption(3).RawText() != "Caption text #4 (line 1)\nCaption text #4 (line 2)" {
		t.Errorf("caption 3: unexpected text %q", doc.Caption(3).RawText())
	}
	if doc.Caption(4).Text() != "Caption text #5" {
		t.Errorf("caption 4: unexpected text %q", doc.Caption(4).Text())
	}
}

func TestParseSRTCaptionData(t *testing.T) {
	doc, err := ParseSRT(strings.NewReader("1\n00:00:00,500 --> 00:00:07,000\nCaption text #1\n"))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	c := doc.Caption(0)
	if c.StartSeconds() != 0.5 || c.EndSeconds() != 7 {
		t.Errorf("unexpected timing %v --> %v", c.StartSeconds(), c.EndSeconds())
	}
	if len(c.Lines()) != 1 || c.Lines()[0] != "Caption text #1" {
		t.Errorf("unexpected lines %q", c.Lines())
	}
}

func TestParseSRTDropsEmptyCaptions(t *testing.T) {
	doc, err := ParseSRT(strings.NewReader(`1
00:00:00,500 --> 00:00:07,000
Caption text #1

2
00:00:07,000 --> 00:00:11,890

3
00:00:11,890 --> 00:00:16,320
Caption text #3

4
00:00:16,320 --> 00:00:21,580
Caption text #4

5
00:00:21,580 --> 00:00:23,880
Caption text #5
`))
	if err != nil {
		t.Fatalf("ParseSRT failed: %v", err)
	}
	if doc.Len() != 4 {
		t.Fatalf("expected 4 captions, got %d", doc.Len())
	}
	if doc.Caption(1).RawText() != "Caption text #3" {
		t.Errorf("unexpected text %q", doc.Caption(1).RawText())
	}
}

func TestParseSRTInvalidFormat(t *testing.T) {
	tests := map[string]string{
		"empty":               "",
		"single line":         "1",
		"first line not 1":    "2\n00:00:00,500 --> 00:00:07,000\nCaption text #1\n",
		"dot separator":       "1\n00:00:00.500 --> 00:00:07.000\nCaption text #1\n",
		"missing timing line": "1\nCaption text #1\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSRT(strings.NewReader(content))
			var fileErr *MalformedFileError
			if !errors.As(err, &fileErr) {
				t.Fatalf("expected MalformedFileError, got %v", err)
			}
		})
	}
}

func TestParseSRTCaptionErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "missing timeframe",
			content:  "1\n00:00:00,500 --> 00:00:07,000\nCaption text #1\n\n2\nCaption text #2\n",
			wantLine: 6,
			wantMsg:  "caption missing timeframe",
		},
		{
			name:     "invalid timestamp",
			content:  "1\n00:00:00,500 --> 00:00:07,000\nCaption text #1\n\n2\n00:00:07,000 --> 00:00:11.890\nCaption text #2\n",
			wantLine: 6,
			wantMsg:  "invalid time format",
		},
		{
			name:     "second timing line",
			content:  "1\n00:00:00,500 --> 00:00:07,000\nCaption text #1\n00:00:07,000 --> 00:00:11,890\nCaption text #2\n",
			wantLine: 4,
			wantMsg:  "duplicate timing line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSRT(strings.NewReader(tt.content))
			var capErr *MalformedCaptionError
			if !errors.As(err, &capErr) {
				t.Fatalf("expected MalformedCaptionError, got %v", err)
			}
			if capErr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, capErr.Line)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected %q in error, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestSRTRoundTrip(t *testing.T) {
	original, err := os.ReadFile("testdata/sample.srt")
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	doc, err := FromSRT("testdata/sample.srt")
	if err != nil {
		t.Fatalf("FromSRT failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "sample_converted.srt")
	if err := doc.SaveAsSRT(out); err != nil {
		t.Fatalf("SaveAsSRT failed: %v", err)
	}

	converted, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	if strings.TrimSpace(string(original)) != strings.TrimSpace(string(converted)) {
		t.Errorf("round trip changed the file:\n%s\n---\n%s", original, converted)
	}
}
