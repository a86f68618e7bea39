package subtitle

import (
	"io"
)

// Open reads a caption file, choosing the parser from the file extension.
func Open(path string) (*Document, error) {
	format, err := GetFormatFromExtension(path)
	if err != nil {
		return nil, err
	}
	return readFile(path, format)
}

// Read reads a WebVTT file.
func Read(path string) (*Document, error) {
	return readFile(path, FormatVTT)
}

// FromSRT reads a SubRip file.
func FromSRT(path string) (*Document, error) {
	return readFile(path, FormatSRT)
}

// FromSBV reads a YouTube SBV file.
func FromSBV(path string) (*Document, error) {
	return readFile(path, FormatSBV)
}

func ParseVTT(r io.Reader) (*Document, error) { return parseReader(r, FormatVTT) }
func ParseSRT(r io.Reader) (*Document, error) { return parseReader(r, FormatSRT) }
func ParseSBV(r io.Reader) (*Document, error) { return parseReader(r, FormatSBV) }

func readFile(path string, format Format) (*Document, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}
	doc, err := parseLines(lines, format)
	if err != nil {
		return nil, err
	}
	doc.File = path
	return doc, nil
}

func parseReader(r io.Reader, format Format) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return parseLines(lines, format)
}

func parserFor(format Format) textParser {
	switch format {
	case FormatSRT:
		return srtParser{}
	case FormatSBV:
		return sbvParser{}
	default:
		return vttParser{}
	}
}

func parseLines(lines []string, format Format) (*Document, error) {
	p := parserFor(format)
	if err := p.validate(lines); err != nil {
		return nil, err
	}

	doc := &Document{Format: format}

	if bp, ok := p.(blockParser); ok {
		captions, styles, err := bp.parseBlocks(lines)
		if err != nil {
			return nil, err
		}
		doc.captions = captions
		doc.styles = styles
		return doc, nil
	}

	captions, err := scanCaptions(p, lines)
	if err != nil {
		return nil, err
	}
	doc.captions = captions
	return doc, nil
}
