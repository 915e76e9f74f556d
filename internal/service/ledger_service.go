package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

// LedgerService главная книга балансов. Единственная точка мутации балансовых полей
// аккаунта: все изменения выражаются дельтами с округлением до 2 знаков (half-up),
// балансы никогда не перезаписываются вычисленным абсолютом (исключение — служебный
// пересчет Locked в движке планов).
type LedgerService struct {
	uow              uow.UOW
	accountRepo      AccountRepository
	depositRepo      DepositRepository
	convertBonusRate decimal.Decimal
}

func NewLedgerService(u uow.UOW, convertBonusRate decimal.Decimal) (*LedgerService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	depositRepo, depErr := uow.GetRepositoryAs[DepositRepository](u, uow.RepositoryName(repoargs.DepositRepoName))
	if depErr != nil {
		return nil, depErr
	}
	return &LedgerService{
		uow:              u,
		accountRepo:      accountRepo,
		depositRepo:      depositRepo,
		convertBonusRate: convertBonusRate,
	}, nil
}

// Ensure возвращает аккаунт по identity, создавая его при первом обращении.
// Создание идемпотентно: гонка двух первых запросов разрешается перечитыванием
// записи победителя.
func (l *LedgerService) Ensure(ctx context.Context, identity string, username string) (*domain.Account, error) {
	account, findErr := l.accountRepo.FindByIdentity(ctx, identity)
	if findErr == nil {
		return account, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("ensuring account: %w", findErr)
	}

	created, createErr := l.accountRepo.Create(ctx, repoargs.CreateAccount{
		Identity:     identity,
		Username:     username,
		ReferralCode: generateReferralCode(),
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return l.accountRepo.FindByIdentity(ctx, identity) //nolint:wrapcheck
		}
		return nil, fmt.Errorf("ensuring account: %w", createErr)
	}
	return created, nil
}

// CreditFree начисляет amount в свободный баланс. Используется для депозитов и возвратов.
func (l *LedgerService) CreditFree(ctx context.Context, identity string, amount decimal.Decimal) error {
	if err := validatePositive(amount); err != nil {
		return err
	}
	return l.accountRepo.CreditFree(ctx, identity, amount.Round(2)) //nolint:wrapcheck
}

// CreditBonus начисляет реферальный бонус в пул bonusEarnings.
func (l *LedgerService) CreditBonus(ctx context.Context, identity string, amount decimal.Decimal) error {
	if err := validatePositive(amount); err != nil {
		return err
	}
	return l.accountRepo.CreditBonus(ctx, identity, amount.Round(2)) //nolint:wrapcheck
}

// CreditDepositResult результат зачисления депозита.
type CreditDepositResult struct {
	Deposit         *domain.Deposit
	AlreadyCredited bool
}

// CreditDeposit зачисляет внешний депозит в свободный баланс. Идемпотентен по externalRef:
// повторное уведомление с тем же ref не меняет баланс и возвращает AlreadyCredited=true.
//
// Алгоритм работы:
//  1. В транзакции создается запись депозита; дубликат ref означает, что зачисление
//     уже проводилось — транзакция завершается без изменения баланса.
//  2. Тем же коммитом свободный баланс увеличивается на сумму депозита.
func (l *LedgerService) CreditDeposit(
	ctx context.Context,
	identity string,
	amount decimal.Decimal,
	externalRef string,
) (*CreditDepositResult, error) {
	if err := validatePositive(amount); err != nil {
		return nil, err
	}
	amount = amount.Round(2)

	var result CreditDepositResult

	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		depositRepo, depErr := uow.GetAs[DepositRepository](tx, uow.RepositoryName(repoargs.DepositRepoName))
		if depErr != nil {
			return depErr //nolint:wrapcheck
		}
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}

		deposit, createErr := depositRepo.Create(c, repoargs.CreateDeposit{
			Identity:    identity,
			Amount:      amount,
			ExternalRef: externalRef,
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				existing, existingErr := depositRepo.FindByExternalRef(c, externalRef)
				if existingErr != nil {
					return existingErr //nolint:wrapcheck
				}
				result = CreditDepositResult{Deposit: existing, AlreadyCredited: true}
				return nil
			}
			return createErr //nolint:wrapcheck
		}

		if creditErr := accountRepo.CreditFree(c, identity, amount); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}
		result = CreditDepositResult{Deposit: deposit}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("crediting deposit: %w", txErr)
	}
	return &result, nil
}

// ConvertResult результат перевода заработка в свободный баланс.
type ConvertResult struct {
	Transferred decimal.Decimal
	Bonus       decimal.Decimal
	Credited    decimal.Decimal
}

// ConvertEarningsToFree переводит весь накопленный заработок (planEarnings + bonusEarnings)
// в свободный баланс с поощрительной надбавкой convertBonusRate.
//
// Алгоритм работы:
//  1. Аккаунт блокируется построчно, берется текущая сумма обоих пулов заработка.
//  2. Пулы обнуляются дельтой, свободный баланс увеличивается на сумму плюс надбавку.
func (l *LedgerService) ConvertEarningsToFree(ctx context.Context, identity string) (*ConvertResult, error) {
	var result ConvertResult

	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}

		account, lockErr := accountRepo.LockByIdentity(c, identity)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		base := account.Earnings()
		if !base.IsPositive() {
			return fmt.Errorf("%w: nothing to convert", domain.ErrNotEnoughEarnings)
		}

		bonus := base.Mul(l.convertBonusRate).Round(2)
		credited := base.Add(bonus)

		deltaErr := accountRepo.ApplyEarningsDelta(c, repoargs.EarningsDelta{
			Identity:   identity,
			PlanDelta:  account.PlanEarnings.Neg(),
			BonusDelta: account.BonusEarnings.Neg(),
		})
		if deltaErr != nil {
			return deltaErr //nolint:wrapcheck
		}
		if creditErr := accountRepo.CreditFree(c, identity, credited); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		result = ConvertResult{Transferred: base, Bonus: bonus, Credited: credited}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("converting earnings: %w", txErr)
	}
	return &result, nil
}

// DebitSplit точное разбиение списания заработка для последующего возврата.
type DebitSplit struct {
	FromPlan  decimal.Decimal
	FromBonus decimal.Decimal
}

func (s DebitSplit) Total() decimal.Decimal {
	return s.FromPlan.Add(s.FromBonus)
}

// DebitEarningsTx списывает amount из пулов заработка внутри чужой транзакции:
// сначала из planEarnings, остаток — из bonusEarnings. Вызывающий обязан держать
// построчную блокировку аккаунта.
func (l *LedgerService) DebitEarningsTx(
	ctx context.Context,
	tx uow.TX,
	account *domain.Account,
	amount decimal.Decimal,
) (DebitSplit, error) {
	amount = amount.Round(2)
	if account.Earnings().LessThan(amount) {
		return DebitSplit{}, domain.ErrNotEnoughEarnings
	}

	split := DebitSplit{FromPlan: decimal.Min(account.PlanEarnings, amount)}
	split.FromBonus = amount.Sub(split.FromPlan)

	accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return DebitSplit{}, accErr //nolint:wrapcheck
	}
	deltaErr := accountRepo.ApplyEarningsDelta(ctx, repoargs.EarningsDelta{
		Identity:   account.Identity,
		PlanDelta:  split.FromPlan.Neg(),
		BonusDelta: split.FromBonus.Neg(),
	})
	if deltaErr != nil {
		return DebitSplit{}, deltaErr //nolint:wrapcheck
	}
	return split, nil
}

// RefundEarningsTx возвращает ранее списанное разбиение ровно в те пулы, из которых
// оно было взято.
func (l *LedgerService) RefundEarningsTx(ctx context.Context, tx uow.TX, identity string, split DebitSplit) error {
	accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return accErr //nolint:wrapcheck
	}
	return accountRepo.ApplyEarningsDelta(ctx, repoargs.EarningsDelta{ //nolint:wrapcheck
		Identity:   identity,
		PlanDelta:  split.FromPlan,
		BonusDelta: split.FromBonus,
	})
}

// Deposits возвращает последние зачисления пользователя, новые первыми.
func (l *LedgerService) Deposits(ctx context.Context, identity string, limit uint) ([]domain.Deposit, error) {
	deposits, err := l.depositRepo.GetByIdentity(ctx, identity, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return deposits, nil
}

func validatePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return nil
}

const referralCodeBytes = 8

// generateReferralCode выдает случайный hex-код приглашения. Уникальность гарантирует
// индекс в БД, коллизия разрешается как обычный дубликат при создании.
func generateReferralCode() string {
	buf := make([]byte, referralCodeBytes)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
