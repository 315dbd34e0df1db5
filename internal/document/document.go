package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfMagic is the header every PDF starts with.
const pdfMagic = "%PDF-"

var (
	// ErrEmpty is returned when the uploaded buffer contains no data.
	ErrEmpty = errors.New("document is empty")
	// ErrNotPDF is returned when neither the content nor the hints identify a PDF.
	ErrNotPDF = errors.New("document is not a PDF")
)

// Raw is an uploaded document: an immutable byte buffer plus filename and
// content-type hints. It lives only for the duration of one analysis call.
type Raw struct {
	Data        []byte
	Filename    string
	ContentType string
}

// New validates the buffer and hints and wraps them into a Raw document.
// Validation here is local and cheap: the document service performs the real
// parsing, so only clearly non-PDF input is rejected.
func New(data []byte, filename, contentType string) (*Raw, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	if !looksLikePDF(data, filename, contentType) {
		return nil, fmt.Errorf("%w: filename %q, content type %q", ErrNotPDF, filename, contentType)
	}

	return &Raw{
		Data:        data,
		Filename:    filename,
		ContentType: contentType,
	}, nil
}

// PageCount parses the document with pdfcpu and returns its page count.
// It is used for observability only; a parse failure here must not block
// extraction, since the remote service handles PDFs pdfcpu cannot.
func (r *Raw) PageCount() (int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(r.Data), conf)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	return ctx.PageCount, nil
}

func looksLikePDF(data []byte, filename, contentType string) bool {
	if bytes.HasPrefix(data, []byte(pdfMagic)) {
		return true
	}

	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}

	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
