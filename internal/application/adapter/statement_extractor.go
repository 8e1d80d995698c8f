// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// ExtractionRequest carries the statement document and the context the
// extraction collaborator needs to assign categories and hint at duplicates.
type ExtractionRequest struct {
	PDF        []byte
	Categories []*entity.Category
	Existing   []*entity.Transaction
}

// StatementExtractor is the external collaborator that turns a PDF bank
// statement into candidate transactions. A failure surfaces as a single
// error; partial results are never trusted.
type StatementExtractor interface {
	// Extract parses the statement. The call may run for minutes; callers
	// bound it with a context deadline and treat expiry as failure.
	Extract(ctx context.Context, request *ExtractionRequest) ([]*entity.CandidateTransaction, error)

	// IsAvailable reports whether the extractor is configured.
	IsAvailable() bool
}
