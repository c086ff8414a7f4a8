package vectorstore

import "fmt"

// NoEmbeddingError indicates a company referenced in a resume has no indexed
// profile embedding. Distinct from an empty news result: it names a data
// problem the caller must surface, not a valid empty evidence set.
type NoEmbeddingError struct {
	CompanyName string
}

func (e *NoEmbeddingError) Error() string {
	return fmt.Sprintf("no profile embedding indexed for company %q", e.CompanyName)
}
