package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/cv-profiler/constants"
	"github.com/joseph-ayodele/cv-profiler/internal/common"
)

func TestExtractTXT(t *testing.T) {
	e := NewDocumentExtractor(nil)

	res, err := e.Extract(context.Background(), constants.TXT, []byte("Jane Doe\nSoftware Engineer"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Text != "Jane Doe\nSoftware Engineer" {
		t.Errorf("Text = %q", res.Text)
	}
	if res.Format != constants.TXT {
		t.Errorf("Format = %q, want TXT", res.Format)
	}
}

func TestExtractTXTInvalidUTF8(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), constants.TXT, []byte{0xff, 0xfe, 0x41})
	if err == nil {
		t.Fatal("Extract() expected error for invalid UTF-8")
	}
	if kind := common.KindOf(err); kind != common.KindExtractionFailed {
		t.Errorf("kind = %q, want EXTRACTION_FAILED", kind)
	}
}

func TestExtractTXTEmptyIsValid(t *testing.T) {
	e := NewDocumentExtractor(nil)

	// Empty text is a valid result at this layer; rejecting it is the
	// pipeline's responsibility.
	res, err := e.Extract(context.Background(), constants.TXT, []byte("   \n\t"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Text != "   \n\t" {
		t.Errorf("Text = %q", res.Text)
	}
}

func TestExtractUnknownFormat(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), constants.FileFormat("XLSX"), []byte("data"))
	if err == nil {
		t.Fatal("Extract() expected error for unknown format")
	}
	if kind := common.KindOf(err); kind != common.KindUnsupportedFormat {
		t.Errorf("kind = %q, want UNSUPPORTED_FORMAT", kind)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), constants.PDF, []byte("this is not a pdf"))
	if err == nil {
		t.Fatal("Extract() expected error for corrupt PDF")
	}
	if kind := common.KindOf(err); kind != common.KindExtractionFailed {
		t.Errorf("kind = %q, want EXTRACTION_FAILED", kind)
	}
}

func TestExtractCorruptDOCX(t *testing.T) {
	e := NewDocumentExtractor(nil)

	_, err := e.Extract(context.Background(), constants.DOCX, []byte("not a zip archive"))
	if err == nil {
		t.Fatal("Extract() expected error for corrupt DOCX")
	}
	if kind := common.KindOf(err); kind != common.KindExtractionFailed {
		t.Errorf("kind = %q, want EXTRACTION_FAILED", kind)
	}
}

func TestDocxParagraphs(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "two paragraphs",
			body: `<w:p><w:r><w:t>First line</w:t></w:r></w:p><w:p><w:r><w:t>Second line</w:t></w:r></w:p>`,
			want: []string{"First line", "Second line"},
		},
		{
			name: "runs joined within a paragraph",
			body: `<w:p><w:r><w:t>Jane </w:t></w:r><w:r><w:t>Doe</w:t></w:r></w:p>`,
			want: []string{"Jane Doe"},
		},
		{
			name: "empty paragraphs skipped",
			body: `<w:p></w:p><w:p><w:r><w:t>Only</w:t></w:r></w:p><w:p/>`,
			want: []string{"Only"},
		},
		{
			name: "entities unescaped",
			body: `<w:p><w:r><w:t>R&amp;D &lt;lead&gt;</w:t></w:r></w:p>`,
			want: []string{"R&D <lead>"},
		},
		{
			name: "no paragraphs",
			body: ``,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := docxParagraphs(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("docxParagraphs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
