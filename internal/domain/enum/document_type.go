package enum

import "fmt"

// DocumentType identifies which kind of billing document a PDF request
// refers to. It arrives as a query string value, not a database column,
// so it stays a string type.
type DocumentType string

const (
	DocumentTypeEstimate DocumentType = "estimate"
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeContract DocumentType = "contract"
)

// ParseDocumentType validates a raw query value
func ParseDocumentType(raw string) (DocumentType, error) {
	switch DocumentType(raw) {
	case DocumentTypeEstimate, DocumentTypeInvoice, DocumentTypeContract:
		return DocumentType(raw), nil
	}
	return "", fmt.Errorf("unknown document type %q", raw)
}
