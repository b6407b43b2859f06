package loader

import (
	"context"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// DocumentLoader reads PDF, DOCX and ODT files into models.Document
type DocumentLoader struct {
	config      config.LoaderConfig
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
	openers     map[models.DocumentFormat]sourceOpener
}

// NewDocumentLoader creates a new DocumentLoader
func NewDocumentLoader(cfg config.LoaderConfig, logger zerolog.Logger) *DocumentLoader {
	componentLogger := logger.With().Str("component", "DocumentLoader").Logger()
	return &DocumentLoader{
		config:      cfg,
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
		openers:     defaultOpeners(),
	}
}

// Load reads the document at path. A page that fails to extract is logged and
// contributes empty text and no images, unless the loader is strict.
func (dl *DocumentLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := filemanager.DefaultFileReadOptions()
	opts.MaxSize = dl.config.MaxFileSizeBytes()
	info, err := dl.fileManager.ValidateFileForReading(path, opts)
	if err != nil {
		return nil, err
	}

	docFormat, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	open, ok := dl.openers[docFormat]
	if !ok {
		return nil, errorwrapper.WrapErrorf(errorwrapper.ErrUnsupportedFormat, "no reader for %s", docFormat)
	}

	logger := dl.logger.With().Str("path", path).Str("format", string(docFormat)).Logger()
	logger.Debug().Str("size", humanize.IBytes(uint64(info.Size))).Msg("Loading document")

	src, err := open(path)
	if err != nil {
		return nil, errorwrapper.NewDocumentError(path, 0, "failed to open", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close document")
		}
	}()

	doc, err := dl.readPages(ctx, path, docFormat, src, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("pages", doc.PageCount()).
		Int("paragraphs", doc.ParagraphCount()).
		Int("images", doc.TotalImages()).
		Msg("Document loaded")
	return doc, nil
}

func (dl *DocumentLoader) readPages(ctx context.Context, path string, docFormat models.DocumentFormat, src pageSource, logger zerolog.Logger) (*models.Document, error) {
	pageCount, err := src.PageCount()
	if err != nil {
		return nil, errorwrapper.NewDocumentError(path, 0, "failed to count pages", err)
	}

	doc := &models.Document{
		Path:          path,
		Format:        docFormat,
		PagesText:     make([]string, pageCount),
		ImagesPerPage: make([]int, pageCount),
	}

	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := src.ExtractText(i)
		if err != nil {
			if dl.config.Strict {
				return nil, errorwrapper.NewDocumentError(path, i+1, "failed to extract text", err)
			}
			logger.Warn().Err(err).Int("page", i+1).Msg("Text extraction failed, treating page as empty")
			text = ""
		}

		images, err := src.CountImages(i)
		if err != nil {
			if dl.config.Strict {
				return nil, errorwrapper.NewDocumentError(path, i+1, "failed to extract images", err)
			}
			logger.Warn().Err(err).Int("page", i+1).Msg("Image extraction failed, counting zero images")
			images = 0
		}

		doc.PagesText[i] = text
		doc.ImagesPerPage[i] = images
	}

	doc.Paragraphs = BuildParagraphs(doc.PagesText, splitterFor(docFormat))
	return doc, nil
}

// splitterFor picks the paragraph segmentation for a format. Flowing-text
// formats emit one paragraph per line.
func splitterFor(docFormat models.DocumentFormat) func(string) []string {
	if docFormat == models.FormatPDF {
		return SplitIntoParagraphs
	}
	return SplitLines
}
