package statement

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainError "github.com/pocketledger/backend/internal/domain/error"
)

// pdfMagic is the leading byte signature every PDF carries.
var pdfMagic = []byte("%PDF")

type ExtractStatementInput struct {
	PDF []byte
}

type ExtractStatementOutput struct {
	Transactions []*entity.ReviewableTransaction
}

// ExtractStatementUseCase sends a PDF statement to the extraction
// collaborator and reconciles the result against the user's categories and
// existing transactions. The collaborator call is bounded by a timeout;
// expiry is treated as failure, never retried.
type ExtractStatementUseCase struct {
	extractor       adapter.StatementExtractor
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
	timeout         time.Duration
}

func NewExtractStatementUseCase(
	extractor adapter.StatementExtractor,
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
	timeout time.Duration,
) *ExtractStatementUseCase {
	return &ExtractStatementUseCase{
		extractor:       extractor,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		timeout:         timeout,
	}
}

func (u *ExtractStatementUseCase) Execute(ctx context.Context, input ExtractStatementInput) (*ExtractStatementOutput, error) {
	if len(input.PDF) == 0 {
		return nil, domainError.NewStatementError(
			domainError.ErrCodeEmptyStatement,
			"uploaded statement is empty",
			domainError.ErrEmptyStatement,
		)
	}
	if !bytes.HasPrefix(input.PDF, pdfMagic) {
		return nil, domainError.NewStatementError(
			domainError.ErrCodeNotAPDF,
			"uploaded file must be a PDF",
			domainError.ErrNotAPDF,
		)
	}

	categories, err := u.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := u.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	extractCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	candidates, err := u.extractor.Extract(extractCtx, &adapter.ExtractionRequest{
		PDF:        input.PDF,
		Categories: categories,
		Existing:   existing,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainError.NewStatementError(
				domainError.ErrCodeExtractionTimeout,
				"statement extraction timed out",
				domainError.ErrExtractionTimeout,
			)
		}
		return nil, domainError.NewStatementError(
			domainError.ErrCodeExtractionFailed,
			"statement extraction failed",
			err,
		)
	}

	return &ExtractStatementOutput{
		Transactions: Reconcile(candidates, categories, existing),
	}, nil
}
