package subtitle

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/asticode/go-astisub"
)

func testCaptions(t *testing.T) []*Caption {
	t.Helper()
	first, err := NewCaption("00:00:01.000", "00:00:04.000", "Hello, world!")
	if err != nil {
		t.Fatal(err)
	}
	first.Identifier = "intro"
	second, err := NewCaption("00:00:05.500", "00:00:08.200", "This is a test.", "With multiple lines.")
	if err != nil {
		t.Fatal(err)
	}
	return []*Caption{first, second}
}

func TestVTTWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&VTTWriter{}).Write(&buf, testCaptions(t)); err != nil {
		t.Fatalf("failed to write VTT: %v", err)
	}

	expected := `WEBVTT

intro
00:00:01.000 --> 00:00:04.000
Hello, world!

00:00:05.500 --> 00:00:08.200
This is a test.
With multiple lines.
`
	if buf.String() != expected {
		t.Errorf("unexpected VTT output:\n%s", buf.String())
	}
}

func TestSRTWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&SRTWriter{}).Write(&buf, testCaptions(t)); err != nil {
		t.Fatalf("failed to write SRT: %v", err)
	}

	expected := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

`
	if buf.String() != expected {
		t.Errorf("unexpected SRT output:\n%s", buf.String())
	}
}

func TestVTTRoundTrip(t *testing.T) {
	original, err := os.ReadFile("testdata/sample.vtt")
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	doc, err := Read("testdata/sample.vtt")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf, FormatVTT); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if strings.TrimSpace(string(original)) != strings.TrimSpace(buf.String()) {
		t.Errorf("round trip changed the file:\n%s", buf.String())
	}
}

// end before start is written as given
func TestWriteReversedTiming(t *testing.T) {
	c, err := NewCaption("00:00:05.000", "00:00:01.000", "backwards")
	if err != nil {
		t.Fatalf("NewCaption failed: %v", err)
	}

	var buf bytes.Buffer
	if err := NewDocument(c).Write(&buf, FormatVTT); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "00:00:05.000 --> 00:00:01.000") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteVTTCuesOmitsIdentifiers(t *testing.T) {
	var sb strings.Builder
	WriteVTTCues(&sb, testCaptions(t)[:1])

	expected := "\n00:00:01.000 --> 00:00:04.000\nHello, world!\n"
	if sb.String() != expected {
		t.Errorf("unexpected cues: %q", sb.String())
	}
}

func TestNewWriterUnsupported(t *testing.T) {
	if _, err := NewWriter(FormatSBV); err == nil {
		t.Error("expected error for sbv output")
	}
}

func TestFormatExtensions(t *testing.T) {
	for _, f := range []Format{FormatVTT, FormatSRT, FormatSBV} {
		got, err := GetFormatFromExtension("captions" + GetExtensionForFormat(f))
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if got != f {
			t.Errorf("expected %s, got %s", f, got)
		}
	}
}

func millis(d float64) time.Duration {
	return time.Duration(math.Round(d*1000)) * time.Millisecond
}

// output is read back by an independent parser
func TestWriterOutputReadableByAstisub(t *testing.T) {
	doc, err := Read("testdata/sample.vtt")
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	tests := []struct {
		format Format
		read   func(*bytes.Buffer) (*astisub.Subtitles, error)
	}{
		{FormatVTT, func(b *bytes.Buffer) (*astisub.Subtitles, error) { return astisub.ReadFromWebVTT(b) }},
		{FormatSRT, func(b *bytes.Buffer) (*astisub.Subtitles, error) { return astisub.ReadFromSRT(b) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := doc.Write(&buf, tt.format); err != nil {
				t.Fatalf("failed to write: %v", err)
			}

			subs, err := tt.read(&buf)
			if err != nil {
				t.Fatalf("astisub could not read output: %v", err)
			}
			if len(subs.Items) != doc.Len() {
				t.Fatalf("expected %d items, got %d", doc.Len(), len(subs.Items))
			}

			for i, item := range subs.Items {
				c := doc.Caption(i)
				if item.StartAt != millis(c.StartSeconds()) {
					t.Errorf("item %d: start %v, want %v", i, item.StartAt, millis(c.StartSeconds()))
				}
				if item.EndAt != millis(c.EndSeconds()) {
					t.Errorf("item %d: end %v, want %v", i, item.EndAt, millis(c.EndSeconds()))
				}
			}
		})
	}
}
