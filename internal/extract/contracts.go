package extract

import (
	"context"

	"github.com/joseph-ayodele/cv-profiler/constants"
)

// TextExtractor is stage 1 of the pipeline: document bytes -> plain text.
type TextExtractor interface {
	Extract(ctx context.Context, format constants.FileFormat, content []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text   string
	Pages  int // PDF pages or DOCX paragraphs contributing text; 1 for TXT
	Format constants.FileFormat
}
