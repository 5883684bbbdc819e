package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateReference builds a sequential document reference, e.g. "EST-000042".
func GenerateReference(prefix string, number int) string {
	return fmt.Sprintf("%s-%06d", prefix, number)
}

// GenerateDocumentKey generates a unique storage key for a rendered document
func GenerateDocumentKey(docType string, id uuid.UUID) string {
	return fmt.Sprintf("documents/%s-%s.pdf", strings.ToLower(docType), id.String())
}
