// Package export turns a fully resolved contract into a downloadable PDF or
// DOCX artifact and optionally parks the result in object storage.
package export

import "errors"

// Format represents the export output format
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Result contains the export output
type Result struct {
	Data      []byte
	Filename  string
	MimeType  string
	ObjectKey string // set when the artifact was uploaded to object storage
	URL       string // presigned download link, when uploaded
}

var (
	// ErrPDFDependencyMissing indicates PDF export runtime dependencies are unavailable.
	ErrPDFDependencyMissing = errors.New("export pdf dependency missing")
	// ErrDOCXDependencyMissing indicates DOCX export runtime dependencies are unavailable.
	ErrDOCXDependencyMissing = errors.New("export docx dependency missing")
)
