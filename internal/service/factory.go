package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/pkg/uow"
)

type AppServices struct {
	Ledger      *LedgerService
	Plans       *PlanService
	Referrals   *ReferralService
	Withdrawals *WithdrawalService
	Allocator   *AllocatorService
}

// FactoryParams зависимости и продуктовые параметры сервисного слоя.
type FactoryParams struct {
	Transfer         TransferClient
	Deriver          AddressDeriver
	SummaryCache     SummaryCache
	Logger           *logrus.Entry
	Plan             PlanServiceParams
	MinWithdrawal    decimal.Decimal
	ReferralRate     decimal.Decimal
	ConvertBonusRate decimal.Decimal
	AllocStartIndex  int64
}

func Factory(unitOfWork uow.UOW, params FactoryParams) (*AppServices, error) {
	ledger, ledgerErr := NewLedgerService(unitOfWork, params.ConvertBonusRate)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerErr.Error())
	}

	referrals, referralsErr := NewReferralService(unitOfWork, params.SummaryCache, params.Logger, params.ReferralRate)
	if referralsErr != nil {
		return nil, fmt.Errorf("service factory: %s", referralsErr.Error())
	}

	plans, plansErr := NewPlanService(unitOfWork, referrals, params.Plan)
	if plansErr != nil {
		return nil, fmt.Errorf("service factory: %s", plansErr.Error())
	}

	withdrawals, withdrawalsErr :=
		NewWithdrawalService(unitOfWork, ledger, params.Transfer, params.Logger, params.MinWithdrawal)
	if withdrawalsErr != nil {
		return nil, fmt.Errorf("service factory: %s", withdrawalsErr.Error())
	}

	allocator, allocatorErr := NewAllocatorService(unitOfWork, params.Deriver, params.AllocStartIndex)
	if allocatorErr != nil {
		return nil, fmt.Errorf("service factory: %s", allocatorErr.Error())
	}

	return &AppServices{
		Ledger:      ledger,
		Plans:       plans,
		Referrals:   referrals,
		Withdrawals: withdrawals,
		Allocator:   allocator,
	}, nil
}
