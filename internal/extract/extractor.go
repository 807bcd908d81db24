package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/joseph-ayodele/cv-profiler/constants"
	"github.com/joseph-ayodele/cv-profiler/internal/common"
)

// DocumentExtractor converts uploaded resume bytes into plain text based on
// the declared format. Empty output is a valid result at this layer; the
// pipeline decides whether empty text is acceptable.
type DocumentExtractor struct {
	logger *slog.Logger
}

func NewDocumentExtractor(logger *slog.Logger) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{logger: logger}
}

func (e *DocumentExtractor) Extract(_ context.Context, format constants.FileFormat, content []byte) (TextExtractionResult, error) {
	switch format {
	case constants.PDF:
		return e.extractPDF(content)
	case constants.DOCX:
		return e.extractDOCX(content)
	case constants.TXT:
		return e.extractTXT(content)
	default:
		return TextExtractionResult{}, common.Ef(common.KindUnsupportedFormat, "unsupported format: %s", format)
	}
}

func (e *DocumentExtractor) extractPDF(content []byte) (res TextExtractionResult, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = common.E(common.KindExtractionFailed, "pdf extraction panicked", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return TextExtractionResult{}, common.E(common.KindExtractionFailed, "read pdf", err)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with no extractable text (e.g. scanned images) are skipped.
			e.logger.Warn("extract.pdf.page_skipped", "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return TextExtractionResult{
		Text:   strings.Join(pages, "\n"),
		Pages:  len(pages),
		Format: constants.PDF,
	}, nil
}

func (e *DocumentExtractor) extractDOCX(content []byte) (TextExtractionResult, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return TextExtractionResult{}, common.E(common.KindExtractionFailed, "parse docx", err)
	}
	defer doc.Close()

	paras := docxParagraphs(doc.Editable().GetContent())
	return TextExtractionResult{
		Text:   strings.Join(paras, "\n"),
		Pages:  len(paras),
		Format: constants.DOCX,
	}, nil
}

func (e *DocumentExtractor) extractTXT(content []byte) (TextExtractionResult, error) {
	if !utf8.Valid(content) {
		return TextExtractionResult{}, common.Ef(common.KindExtractionFailed, "txt content is not valid UTF-8")
	}
	return TextExtractionResult{
		Text:   string(content),
		Pages:  1,
		Format: constants.TXT,
	}, nil
}

var docxTagRE = regexp.MustCompile(`<[^>]*>`)

// docxParagraphs strips WordprocessingML markup from the document body and
// returns one string per paragraph, in document order.
func docxParagraphs(body string) []string {
	chunks := strings.Split(body, "</w:p>")
	paras := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text := docxTagRE.ReplaceAllString(chunk, "")
		text = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'").Replace(text)
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		paras = append(paras, text)
	}
	return paras
}
