package document

import (
	"errors"
	"testing"
)

func TestNewRejectsEmptyBuffer(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, "resume.pdf", "application/pdf"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestNewRejectsNonPDF(t *testing.T) {
	t.Parallel()

	_, err := New([]byte("plain text resume"), "resume.txt", "text/plain")
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}

func TestNewAcceptsByHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        []byte
		filename    string
		contentType string
	}{
		{name: "magic header", data: []byte("%PDF-1.7 rest"), filename: "x.bin", contentType: ""},
		{name: "content type", data: []byte("garbled"), filename: "x.bin", contentType: "application/pdf"},
		{name: "extension", data: []byte("garbled"), filename: "Resume.PDF", contentType: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := New(tc.data, tc.filename, tc.contentType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Filename != tc.filename {
				t.Fatalf("filename hint lost: %q", doc.Filename)
			}
		})
	}
}

func TestPageCountOnGarbageFails(t *testing.T) {
	t.Parallel()

	doc, err := New([]byte("%PDF-1.4 not really a pdf"), "resume.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := doc.PageCount(); err == nil {
		t.Fatal("expected pdfcpu to reject a truncated document")
	}
}
