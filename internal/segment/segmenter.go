// Package segment slices a caption timeline into fixed duration WebVTT
// segments and an HLS playlist that lists them.
package segment

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/webvtt/internal/logging"
	"github.com/mgpai22/webvtt/internal/subtitle"
)

const (
	DefaultSeconds = 10
	DefaultMPEGTS  = 900000

	// upper bound on segments per run, about 11 days at the default duration
	MaxSegments = 100000

	manifestName = "prog_index.m3u8"
)

// Options control how captions are segmented.
type Options struct {
	// target duration of each segment in seconds
	Seconds int
	// presentation timestamp written into every segment header
	MPEGTS int
	// directory receiving the segment files and the playlist
	Output string
}

func DefaultOptions() Options {
	return Options{
		Seconds: DefaultSeconds,
		MPEGTS:  DefaultMPEGTS,
		Output:  ".",
	}
}

// Segmenter partitions captions into segments. A caption is placed in the
// segment holding its start and repeated in every later segment it overlaps.
// Segments hold the document's own *Caption values, so one caption may be
// shared by several segments and none of them owns it.
type Segmenter struct {
	logger *logging.Logger

	total    int
	seconds  int
	mpegts   int
	output   string
	segments [][]*subtitle.Caption
}

type Option func(*Segmenter)

func WithLogger(l *logging.Logger) Option {
	return func(s *Segmenter) {
		s.logger = l
	}
}

func New(opts ...Option) *Segmenter {
	s := &Segmenter{logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TotalSegments returns the number of segments from the last run.
func (s *Segmenter) TotalSegments() int { return s.total }

// Seconds returns the target duration used by the last run.
func (s *Segmenter) Seconds() int { return s.seconds }

// Segments returns the captions of every segment from the last run.
func (s *Segmenter) Segments() [][]*subtitle.Caption { return s.segments }

// SegmentFile reads a WebVTT file and segments its captions.
func (s *Segmenter) SegmentFile(path string, opts Options) error {
	doc, err := subtitle.Read(path)
	if err != nil {
		return err
	}
	return s.Segment(doc, opts)
}

// Segment slices the captions of doc and writes the segment files and the
// playlist into opts.Output.
func (s *Segmenter) Segment(doc *subtitle.Document, opts Options) error {
	if err := validateDocument(doc); err != nil {
		return err
	}
	if opts.Seconds <= 0 {
		return fmt.Errorf("target duration must be positive, got %d", opts.Seconds)
	}

	captions := doc.Captions()

	s.seconds = opts.Seconds
	s.mpegts = opts.MPEGTS
	s.output = opts.Output
	total, err := segmentCount(captions, opts.Seconds)
	if err != nil {
		return err
	}
	s.total = total

	s.logger.Debugw("Slicing captions",
		"captions", len(captions),
		"seconds", s.seconds,
		"segments", s.total,
	)

	s.slice(captions)

	if err := os.MkdirAll(s.outputDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := s.writeSegments(); err != nil {
		return err
	}
	return s.writeManifest()
}

func validateDocument(doc *subtitle.Document) error {
	if doc == nil {
		return subtitle.ErrInvalidCaptions
	}
	for i, c := range doc.Captions() {
		if c == nil {
			return fmt.Errorf("caption %d is nil: %w", i, subtitle.ErrInvalidCaptions)
		}
	}
	return nil
}

// segmentCount sizes the timeline from the latest caption time. Captions are
// kept in source order, so the last caption is not always the latest one.
func segmentCount(captions []*subtitle.Caption, seconds int) (int, error) {
	end := 0.0
	for _, c := range captions {
		end = max(end, c.StartSeconds(), c.EndSeconds())
	}

	total := math.Ceil(end / float64(seconds))
	if total > MaxSegments {
		return 0, fmt.Errorf(
			"captions end at %.3fs and would need %.0f segments, limit is %d",
			end, total, MaxSegments,
		)
	}
	return int(total), nil
}

func (s *Segmenter) slice(captions []*subtitle.Caption) {
	s.segments = make([][]*subtitle.Caption, s.total)
	if s.total == 0 {
		return
	}

	for _, c := range captions {
		start := s.index(c.StartSeconds())
		s.segments[start] = append(s.segments[start], c)

		// repeat the caption in every segment it runs into
		end := s.index(c.EndSeconds())
		for i := start + 1; i <= end; i++ {
			s.segments[i] = append(s.segments[i], c)
		}
	}
}

// index maps a time to its segment. A time on the final boundary belongs to
// the last segment.
func (s *Segmenter) index(seconds float64) int {
	i := int(math.Floor(seconds / float64(s.seconds)))
	if i < 0 {
		return 0
	}
	return min(i, s.total-1)
}

func (s *Segmenter) outputDir() string {
	if s.output == "" {
		return "."
	}
	return s.output
}

func segmentName(index int) string {
	return fmt.Sprintf("fileSequence%d.webvtt", index)
}

func (s *Segmenter) writeSegments() error {
	for i, captions := range s.segments {
		var sb strings.Builder
		sb.WriteString("WEBVTT\n")
		sb.WriteString(fmt.Sprintf("X-TIMESTAMP-MAP=MPEGTS:%d,LOCAL:00:00:00.000\n", s.mpegts))
		subtitle.WriteVTTCues(&sb, captions)

		path := filepath.Join(s.outputDir(), segmentName(i))
		if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("failed to write segment %d: %w", i, err)
		}

		s.logger.Debugw("Wrote segment",
			"file", path,
			"captions", len(captions),
		)
	}
	return nil
}

func (s *Segmenter) writeManifest() error {
	var sb strings.Builder
	sb.WriteString("#EXTM3U\n")
	sb.WriteString(fmt.Sprintf("#EXT-X-TARGETDURATION:%d\n", s.seconds))
	sb.WriteString("#EXT-X-VERSION:3\n")
	sb.WriteString("#EXT-X-PLAYLIST-TYPE:VOD\n")

	for i := 0; i < s.total; i++ {
		sb.WriteString("#EXTINF:30.00000\n")
		sb.WriteString(segmentName(i))
		sb.WriteString("\n")
	}

	sb.WriteString("#EXT-X-ENDLIST\n")

	path := filepath.Join(s.outputDir(), manifestName)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	return nil
}
