package services

import (
	"context"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on the cash ledger.
type LedgerReaderSvc interface {
	// GetUnassignedBalance returns the drawer's current unassigned balance.
	GetUnassignedBalance(ctx context.Context) (decimal.Decimal, error)

	// ListMovements retrieves a paginated movement listing.
	ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, nextToken *string) ([]domain.CashMovement, *string, error)
}

// LedgerWriterSvc defines the append operations on the cash ledger.
type LedgerWriterSvc interface {
	// RecordDeposit appends a positive CASH_IN movement.
	RecordDeposit(ctx context.Context, req dto.CreateDepositRequest) (*domain.CashMovement, error)

	// RecordWithdrawal appends a negative CASH_OUT movement after an atomic
	// balance check.
	RecordWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest) (*domain.CashMovement, error)

	// RecordSale appends a SALE movement posted by the order subsystem.
	RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.CashMovement, error)

	// RecordRefund appends a negative REFUND movement against the drawer.
	RecordRefund(ctx context.Context, req dto.CreateRefundRequest) (*domain.CashMovement, error)

	// RecordCorrection appends a CORRECTION movement with the operator-supplied sign.
	RecordCorrection(ctx context.Context, req dto.CreateCorrectionRequest) (*domain.CashMovement, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
