// Package pdf adapts wkhtmltopdf as the opaque markup-to-paginated-document
// backend consumed by the report pipeline.
package pdf

import (
	"context"
	"fmt"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// WKHTML renders HTML through the wkhtmltopdf binary.
type WKHTML struct{}

// NewWKHTML configures the backend. binaryPath overrides PATH lookup when
// non-empty.
func NewWKHTML(binaryPath string) *WKHTML {
	if binaryPath != "" {
		wkhtmltopdf.SetPath(binaryPath)
	}
	return &WKHTML{}
}

// Render converts the page HTML, with its local chart image references,
// into A4 PDF bytes.
func (w *WKHTML) Render(ctx context.Context, html string) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("init wkhtmltopdf: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginLeft.Set(0)
	pdfg.MarginRight.Set(0)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(10)
	pdfg.Dpi.Set(300)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}
