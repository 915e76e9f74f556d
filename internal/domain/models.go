package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// SponsorChainLimit максимальная глубина цепочки спонсоров.
const SponsorChainLimit = 15

// Account учетная запись пользователя. Identity — стабильный внешний ключ пользователя,
// он же ключ главной книги. Балансовые поля меняются только дельтами через LedgerService.
type Account struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Identity      string
	Username      string
	ReferralCode  string
	ReferredBy    string
	SponsorChain  []string
	PayoutAddress string
	DirectRefs    int64

	Free          decimal.Decimal
	Locked        decimal.Decimal
	BonusEarnings decimal.Decimal
	PlanEarnings  decimal.Decimal
}

// Earnings возвращает сумму обоих заработанных пулов (доступно для вывода).
func (a *Account) Earnings() decimal.Decimal {
	return a.PlanEarnings.Add(a.BonusEarnings)
}

// Plan инвестиционный план с фиксированным сроком. Principal заблокирован до завершения,
// после чего сжигается (в Free не возвращается).
type Plan struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AccountID       int64
	Principal       decimal.Decimal
	DailyRate       decimal.Decimal
	StartAt         time.Time
	EndAt           time.Time
	Duration        int32
	CreditedPeriods int32
	Status          PlanStatusType
	CompletedAt     *time.Time
}

// RemainingPeriods кол-во еще не начисленных периодов.
func (p *Plan) RemainingPeriods() int32 {
	if p.CreditedPeriods >= p.Duration {
		return 0
	}
	return p.Duration - p.CreditedPeriods
}

// Withdrawal заявка на вывод средств. Создается в статусе queued с уже списанными
// средствами; FromPlan/FromBonus хранят точное разбиение списания для возврата при неудаче.
type Withdrawal struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Identity       string
	Amount         decimal.Decimal
	Destination    string
	Status         WithdrawalStatusType
	TxRef          string
	FailReason     string
	FromPlan       decimal.Decimal
	FromBonus      decimal.Decimal
	IdempotencyKey string
}

// Deposit зачисление с платежного рельса. ExternalRef уникален и служит ключом идемпотентности.
type Deposit struct {
	ID          int64
	CreatedAt   time.Time
	Identity    string
	Amount      decimal.Decimal
	ExternalRef string
}

// Allocation выданный пользователю депозитный адрес. Создается единожды и не меняется.
type Allocation struct {
	ID              int64
	CreatedAt       time.Time
	Identity        string
	DerivationIndex int64
	Address         string
}

// ReferralLevel строка сводки по рефералам: кол-во участников, совокупный объем
// их вложений и заработанный с него бонус на уровне.
type ReferralLevel struct {
	Level    int32           `json:"level"`
	Count    int64           `json:"count"`
	Volume   decimal.Decimal `json:"volume"`
	Earnings decimal.Decimal `json:"earnings"`
}

// RateTier ступень дневной ставки. Ставка применяется ко всему принципалу плана,
// попавшему в диапазон. UpTo нулевой ступени без верхней границы задается нулем.
type RateTier struct {
	UpTo decimal.Decimal `json:"upTo"`
	Rate decimal.Decimal `json:"rate"`
}
