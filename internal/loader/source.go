package loader

import (
	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/tsawler/tabula/docx"
	"github.com/tsawler/tabula/format"
	"github.com/tsawler/tabula/layout"
	"github.com/tsawler/tabula/odt"
	"github.com/tsawler/tabula/reader"
)

// pageSource reads a document page by page (0-based)
type pageSource interface {
	PageCount() (int, error)
	// ExtractText and CountImages fail independently so a page with a broken
	// image stream still contributes its text.
	ExtractText(index int) (string, error)
	CountImages(index int) (int, error)
	Close() error
}

type sourceOpener func(path string) (pageSource, error)

// detectFormat maps a path to a supported document format
func detectFormat(path string) (models.DocumentFormat, error) {
	switch format.Detect(path) {
	case format.PDF:
		return models.FormatPDF, nil
	case format.DOCX:
		return models.FormatDOCX, nil
	case format.ODT:
		return models.FormatODT, nil
	default:
		return "", errorwrapper.WrapErrorf(errorwrapper.ErrUnsupportedFormat, "cannot load %s", path)
	}
}

func defaultOpeners() map[models.DocumentFormat]sourceOpener {
	return map[models.DocumentFormat]sourceOpener{
		models.FormatPDF:  openPDF,
		models.FormatDOCX: openDOCX,
		models.FormatODT:  openODT,
	}
}

// pdfSource extracts PDF pages with tabula. Page text is rebuilt from text
// fragments by the layout paragraph detector, which separates paragraphs with
// blank lines.
type pdfSource struct {
	r        *reader.Reader
	detector *layout.ParagraphDetector
}

func openPDF(path string) (pageSource, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfSource{r: r, detector: layout.NewParagraphDetector()}, nil
}

func (s *pdfSource) PageCount() (int, error) {
	return s.r.PageCount()
}

func (s *pdfSource) ExtractText(index int) (string, error) {
	page, err := s.r.GetPage(index)
	if err != nil {
		return "", err
	}

	fragments, err := s.r.ExtractTextFragments(page)
	if err != nil {
		return "", err
	}

	width, err := page.Width()
	if err != nil {
		return "", err
	}
	height, err := page.Height()
	if err != nil {
		return "", err
	}

	return s.detector.DetectFromFragments(fragments, width, height).GetText(), nil
}

func (s *pdfSource) CountImages(index int) (int, error) {
	page, err := s.r.GetPage(index)
	if err != nil {
		return 0, err
	}

	images, err := s.r.ExtractPageImages(page)
	if err != nil {
		return 0, err
	}
	return len(images), nil
}

func (s *pdfSource) Close() error {
	return s.r.Close()
}

// textReader is the part of the tabula docx/odt readers flowSource needs
type textReader interface {
	Text() (string, error)
	Close() error
}

// flowSource exposes a flowing-text document (DOCX, ODT) as a single page
// without images.
type flowSource struct {
	r textReader
}

func openDOCX(path string) (pageSource, error) {
	r, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return &flowSource{r: r}, nil
}

func openODT(path string) (pageSource, error) {
	r, err := odt.Open(path)
	if err != nil {
		return nil, err
	}
	return &flowSource{r: r}, nil
}

func (s *flowSource) PageCount() (int, error) {
	return 1, nil
}

func (s *flowSource) ExtractText(index int) (string, error) {
	if index != 0 {
		return "", errorwrapper.NewError("page %d out of range", index+1)
	}
	return s.r.Text()
}

func (s *flowSource) CountImages(int) (int, error) {
	return 0, nil
}

func (s *flowSource) Close() error {
	return s.r.Close()
}
