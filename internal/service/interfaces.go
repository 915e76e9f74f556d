package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error)
	FindByIdentity(ctx context.Context, identity string) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
	LockByIdentity(ctx context.Context, identity string) (*domain.Account, error)
	CreditFree(ctx context.Context, identity string, delta decimal.Decimal) error
	CreditBonus(ctx context.Context, identity string, delta decimal.Decimal) error
	CreditPlanEarnings(ctx context.Context, identity string, delta decimal.Decimal) error
	MoveFreeToLocked(ctx context.Context, identity string, amount decimal.Decimal) error
	BurnLocked(ctx context.Context, identity string, amount decimal.Decimal) error
	SetLocked(ctx context.Context, identity string, amount decimal.Decimal) error
	ApplyEarningsDelta(ctx context.Context, args repoargs.EarningsDelta) error
	SetPayoutAddress(ctx context.Context, identity, address string) error
	BindReferral(ctx context.Context, args repoargs.BindReferral) error
	IncrementDirectRefs(ctx context.Context, identity string) error
	DownlineIdentities(ctx context.Context, frontier []string) ([]string, error)
}

type PlanRepository interface {
	Create(ctx context.Context, args repoargs.CreatePlan) (*domain.Plan, error)
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Plan, error)
	AdvanceCredited(ctx context.Context, args repoargs.AdvanceCredited) (bool, error)
	MarkCompleted(ctx context.Context, planID int64, completedAt time.Time) (bool, error)
	SumActivePrincipal(ctx context.Context, accountID int64) (decimal.Decimal, error)
	SumPrincipalByIdentities(ctx context.Context, identities []string) (decimal.Decimal, error)
	DistinctActiveIdentities(ctx context.Context, afterAccountID int64, limit uint) ([]domain.ActiveAccountRef, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	MarkSent(ctx context.Context, id int64, txRef string) error
	MarkFailed(ctx context.Context, id int64, reason string) error
	GetByIdentity(ctx context.Context, identity string, limit uint) ([]domain.Withdrawal, error)
	GetStaleQueued(ctx context.Context, olderThan time.Time, limit uint) ([]domain.Withdrawal, error)
}

type DepositRepository interface {
	Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error)
	FindByExternalRef(ctx context.Context, ref string) (*domain.Deposit, error)
	GetByIdentity(ctx context.Context, identity string, limit uint) ([]domain.Deposit, error)
}

type AllocationRepository interface {
	Create(ctx context.Context, args repoargs.CreateAllocation) (*domain.Allocation, error)
	FindByIdentity(ctx context.Context, identity string) (*domain.Allocation, error)
}

type CounterRepository interface {
	ReserveNextIndex(ctx context.Context, key string, startAt int64) (int64, error)
}

// AddressDeriver чистая детерминированная деривация адреса по индексу.
type AddressDeriver interface {
	Address(index uint32) (string, error)
}

// TransferClient узкий контракт внешнего сервиса переводов. Send идемпотентен по
// idempotencyKey: повторная отправка с тем же ключом не порождает второй перевод.
type TransferClient interface {
	Send(ctx context.Context, destination string, amount decimal.Decimal, idempotencyKey string) (string, error)
	Status(ctx context.Context, idempotencyKey string) (domain.TransferStateType, string, error)
}

// SummaryCache кеш read-модели сводки по рефералам. Промах и ошибка кеша равнозначны:
// сервис пересчитывает сводку напрямую.
type SummaryCache interface {
	GetSummary(ctx context.Context, identity string) ([]domain.ReferralLevel, bool)
	SetSummary(ctx context.Context, identity string, levels []domain.ReferralLevel, ttl time.Duration)
}

// Payouter интерфейс реферальных выплат для движка планов.
type Payouter interface {
	Payout(ctx context.Context, purchaser string, amount decimal.Decimal)
}
