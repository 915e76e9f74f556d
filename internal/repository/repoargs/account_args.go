package repoargs

import "github.com/shopspring/decimal"

type CreateAccount struct {
	Identity     string
	Username     string
	ReferralCode string
}

// BindReferral аргументы одноразовой привязки аплайна. SponsorChain уже обрезана
// до domain.SponsorChainLimit на сервисном слое.
type BindReferral struct {
	Identity     string
	ReferredBy   string
	SponsorChain []string
}

// EarningsDelta дельты двух пулов заработка. Отрицательные значения — списание,
// положительные — возврат. Применяется одним атомарным апдейтом.
type EarningsDelta struct {
	Identity   string
	PlanDelta  decimal.Decimal
	BonusDelta decimal.Decimal
}
