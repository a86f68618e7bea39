package subtitle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is an ordered list of captions, in source order, plus the WebVTT
// styles that preceded them.
type Document struct {
	// file the captions were read from or last saved to
	File   string
	Format Format

	captions []*Caption
	styles   []*Style
}

// NewDocument wraps captions that were built in memory.
func NewDocument(captions ...*Caption) *Document {
	return &Document{
		Format:   FormatVTT,
		captions: captions,
	}
}

func (d *Document) Len() int { return len(d.captions) }

// Caption returns the caption at index i.
func (d *Document) Caption(i int) *Caption { return d.captions[i] }

// Captions returns the captions in source order. The returned slice shares
// its elements with the document.
func (d *Document) Captions() []*Caption { return d.captions }

func (d *Document) Styles() []*Style { return d.styles }

// AddCaption appends c to the end of the document.
func (d *Document) AddCaption(c *Caption) {
	d.captions = append(d.captions, c)
}

// TotalLength is the span in whole seconds from the first caption start to
// the last caption end.
func (d *Document) TotalLength() int {
	if len(d.captions) == 0 {
		return 0
	}
	return int(d.captions[len(d.captions)-1].end) - int(d.captions[0].start)
}

// Write serializes the captions to w in the given format.
func (d *Document) Write(w io.Writer, format Format) error {
	writer, err := NewWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(w, d.captions)
}

// Save writes the document as WebVTT. An empty output reuses the source path
// with a .vtt extension, a directory keeps the source name inside it, and any
// other value is used as the file name.
func (d *Document) Save(output string) error {
	return d.saveAs(output, FormatVTT)
}

// SaveAsSRT is Save for SubRip output.
func (d *Document) SaveAsSRT(output string) error {
	return d.saveAs(output, FormatSRT)
}

func (d *Document) saveAs(output string, format Format) error {
	path, err := d.outputPath(output, GetExtensionForFormat(format))
	if err != nil {
		return err
	}
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := d.Write(f, format); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	d.File = path
	d.Format = format
	return nil
}

func (d *Document) outputPath(output, ext string) (string, error) {
	if output == "" {
		if d.File == "" {
			return "", ErrMissingFilename
		}
		return strings.TrimSuffix(d.File, filepath.Ext(d.File)) + ext, nil
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		if d.File == "" {
			return "", ErrMissingFilename
		}
		base := filepath.Base(d.File)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		return filepath.Join(output, name+ext), nil
	}

	if !strings.HasSuffix(strings.ToLower(output), ext) {
		output += ext
	}
	return output, nil
}
