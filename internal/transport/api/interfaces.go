package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/service"
)

// LedgerServicer интерфейс исключительно для моков.
type LedgerServicer interface {
	Ensure(ctx context.Context, identity string, username string) (*domain.Account, error)
	CreditDeposit(
		ctx context.Context,
		identity string,
		amount decimal.Decimal,
		externalRef string,
	) (*service.CreditDepositResult, error)
	ConvertEarningsToFree(ctx context.Context, identity string) (*service.ConvertResult, error)
	Deposits(ctx context.Context, identity string, limit uint) ([]domain.Deposit, error)
}

type PlanServicer interface {
	Purchase(ctx context.Context, identity string, amount decimal.Decimal) (*domain.Plan, error)
	CreditDue(ctx context.Context, identity string) error
	Plans(ctx context.Context, accountID int64) ([]domain.Plan, error)
	Tiers() []domain.RateTier
}

type ReferralServicer interface {
	Bind(ctx context.Context, identity string, code string) error
	Summary(ctx context.Context, identity string) ([]domain.ReferralLevel, error)
}

type WithdrawalServicer interface {
	Request(ctx context.Context, identity string, amount decimal.Decimal, destination string) (*domain.Withdrawal, error)
	SetPayoutAddress(ctx context.Context, identity string, address string) error
	History(ctx context.Context, identity string, limit uint) ([]domain.Withdrawal, error)
}

type AllocatorServicer interface {
	Allocate(ctx context.Context, identity string) (*domain.Allocation, error)
}
