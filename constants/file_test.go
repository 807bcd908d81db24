package constants

import "testing"

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want FileFormat
	}{
		{".pdf", PDF},
		{"pdf", PDF},
		{".PDF", PDF},
		{".docx", DOCX},
		{".txt", TXT},
		{" .TXT ", TXT},
		{".xlsx", ""},
		{".doc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := MapExtToFormat(tt.ext); got != tt.want {
				t.Errorf("MapExtToFormat(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}
