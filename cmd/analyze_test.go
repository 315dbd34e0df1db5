package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spigell/resume-insight/internal/document"
)

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadDocumentRejectsNonPDF(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "resume.txt", []byte("plain text resume"))

	if _, err := loadDocument(path); !errors.Is(err, document.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}

func TestLoadDocumentAcceptsByMagicBytes(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, "resume.bin", []byte("%PDF-1.7 content"))

	doc, err := loadDocument(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Filename != "resume.bin" {
		t.Fatalf("unexpected filename: %q", doc.Filename)
	}
}
