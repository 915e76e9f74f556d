package repoargs

import "github.com/shopspring/decimal"

type CreateWithdrawal struct {
	Identity       string
	Amount         decimal.Decimal
	Destination    string
	FromPlan       decimal.Decimal
	FromBonus      decimal.Decimal
	IdempotencyKey string
}

type CreateDeposit struct {
	Identity    string
	Amount      decimal.Decimal
	ExternalRef string
}

type CreateAllocation struct {
	Identity        string
	DerivationIndex int64
	Address         string
}
