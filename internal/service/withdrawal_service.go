package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

// WithdrawalService двухфазный вывод заработка на внешний адрес.
//
// Фаза 1 — резервирование: списание и заявка в статусе queued коммитятся до любого
// сетевого вызова. Фаза 2 — внешний перевод и финализация (sent либо failed с точным
// возвратом списания). Зависшие в queued заявки добирает Reconcile по ключу
// идемпотентности.
type WithdrawalService struct {
	uow            uow.UOW
	ledger         *LedgerService
	accountRepo    AccountRepository
	withdrawalRepo WithdrawalRepository
	transfer       TransferClient
	logger         *logrus.Entry
	minWithdrawal  decimal.Decimal
}

func NewWithdrawalService(
	u uow.UOW,
	ledger *LedgerService,
	transfer TransferClient,
	logger *logrus.Entry,
	minWithdrawal decimal.Decimal,
) (*WithdrawalService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	withdrawalRepo, wErr :=
		uow.GetRepositoryAs[WithdrawalRepository](u, uow.RepositoryName(repoargs.WithdrawalRepoName))
	if wErr != nil {
		return nil, wErr
	}
	return &WithdrawalService{
		uow:            u,
		ledger:         ledger,
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		transfer:       transfer,
		logger:         logger,
		minWithdrawal:  minWithdrawal,
	}, nil
}

// SetPayoutAddress сохраняет адрес выплат по умолчанию.
func (w *WithdrawalService) SetPayoutAddress(ctx context.Context, identity string, address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%w: invalid payout address", domain.ErrValidation)
	}
	checksummed := common.HexToAddress(address).Hex()
	return w.accountRepo.SetPayoutAddress(ctx, identity, checksummed) //nolint:wrapcheck
}

// Request выводит amount из пулов заработка на destination (или на сохраненный адрес
// выплат, если destination пуст).
//
// Алгоритм работы:
//  1. Валидация: минимум, адрес назначения, достаточность заработка.
//  2. Фаза резервирования: под построчной блокировкой аккаунта amount списывается
//     из planEarnings, остаток из bonusEarnings; заявка пишется в статусе queued
//     с точным разбиением списания и ключом идемпотентности.
//  3. Внешний перевод по ключу идемпотентности. Успех — заявка sent. Однозначный
//     отказ — возврат разбиения ровно в исходные пулы и статус failed; вызывающему
//     это не ошибка, а заявка в терминальном статусе. Неоднозначный исход (таймаут,
//     5xx) оставляет заявку в queued — её добирает Reconcile, деньги при этом
//     не возвращаются, пока судьба перевода не выяснена.
func (w *WithdrawalService) Request(
	ctx context.Context,
	identity string,
	amount decimal.Decimal,
	destination string,
) (*domain.Withdrawal, error) {
	amount = amount.Round(2)
	if amount.LessThan(w.minWithdrawal) {
		return nil, &domain.BelowMinimumError{Minimum: w.minWithdrawal, Got: amount}
	}

	resolvedDest, destErr := w.resolveDestination(ctx, identity, destination)
	if destErr != nil {
		return nil, destErr
	}

	withdrawal, reserveErr := w.reserve(ctx, identity, amount, resolvedDest)
	if reserveErr != nil {
		return nil, reserveErr
	}

	return w.settle(ctx, withdrawal)
}

func (w *WithdrawalService) resolveDestination(ctx context.Context, identity, destination string) (string, error) {
	if destination == "" {
		account, findErr := w.accountRepo.FindByIdentity(ctx, identity)
		if findErr != nil {
			return "", fmt.Errorf("resolving destination: %w", findErr)
		}
		destination = account.PayoutAddress
	}
	if destination == "" {
		return "", fmt.Errorf("%w: no payout address set", domain.ErrValidation)
	}
	if !common.IsHexAddress(destination) {
		return "", fmt.Errorf("%w: invalid destination address", domain.ErrValidation)
	}
	return common.HexToAddress(destination).Hex(), nil
}

// reserve фаза 1: списание и заявка queued одним коммитом.
func (w *WithdrawalService) reserve(
	ctx context.Context,
	identity string,
	amount decimal.Decimal,
	destination string,
) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal

	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}
		withdrawalRepo, wRepoErr :=
			uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}

		account, lockErr := accountRepo.LockByIdentity(c, identity)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		split, debitErr := w.ledger.DebitEarningsTx(c, tx, account, amount)
		if debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		created, createErr := withdrawalRepo.Create(c, repoargs.CreateWithdrawal{
			Identity:       identity,
			Amount:         amount,
			Destination:    destination,
			FromPlan:       split.FromPlan,
			FromBonus:      split.FromBonus,
			IdempotencyKey: uuid.NewString(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		withdrawal = created
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotEnoughEarnings) {
			return nil, domain.ErrNotEnoughEarnings
		}
		return nil, fmt.Errorf("reserving withdrawal: %w", txErr)
	}
	return withdrawal, nil
}

// settle фаза 2: внешний перевод и финализация заявки.
func (w *WithdrawalService) settle(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	txRef, sendErr := w.transfer.Send(ctx, withdrawal.Destination, withdrawal.Amount, withdrawal.IdempotencyKey)
	if sendErr == nil {
		return w.finalizeSent(ctx, withdrawal, txRef), nil
	}

	var transferErr *domain.TransferFailedError
	if errors.As(sendErr, &transferErr) && !transferErr.Transient {
		return w.finalizeFailed(ctx, withdrawal, transferErr.Reason)
	}

	// исход неизвестен: заявка остается в queued до выяснения через Reconcile
	w.logger.WithError(sendErr).WithField("withdrawal_id", withdrawal.ID).
		Warn("withdrawal settlement deferred to reconciliation")
	return withdrawal, nil
}

func (w *WithdrawalService) finalizeSent(
	ctx context.Context,
	withdrawal *domain.Withdrawal,
	txRef string,
) *domain.Withdrawal {
	if markErr := w.withdrawalRepo.MarkSent(ctx, withdrawal.ID, txRef); markErr != nil {
		// перевод прошел, заявка осталась в queued: Reconcile дошьет статус по ключу
		w.logger.WithError(markErr).WithField("withdrawal_id", withdrawal.ID).
			Error("marking withdrawal sent failed")
		return withdrawal
	}
	withdrawal.Status = domain.WithdrawalStatusSent
	withdrawal.TxRef = txRef
	return withdrawal
}

// finalizeFailed возвращает списанное разбиение ровно в исходные пулы и помечает
// заявку failed одним коммитом.
func (w *WithdrawalService) finalizeFailed(
	ctx context.Context,
	withdrawal *domain.Withdrawal,
	reason string,
) (*domain.Withdrawal, error) {
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		withdrawalRepo, wRepoErr :=
			uow.GetAs[WithdrawalRepository](tx, uow.RepositoryName(repoargs.WithdrawalRepoName))
		if wRepoErr != nil {
			return wRepoErr //nolint:wrapcheck
		}
		refundErr := w.ledger.RefundEarningsTx(c, tx, withdrawal.Identity, DebitSplit{
			FromPlan:  withdrawal.FromPlan,
			FromBonus: withdrawal.FromBonus,
		})
		if refundErr != nil {
			return refundErr //nolint:wrapcheck
		}
		return withdrawalRepo.MarkFailed(c, withdrawal.ID, reason) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("refunding withdrawal %d: %w", withdrawal.ID, txErr)
	}
	withdrawal.Status = domain.WithdrawalStatusFailed
	withdrawal.FailReason = reason
	return withdrawal, nil
}

// Reconcile добирает заявки, зависшие в queued дольше olderThan: судьба перевода
// выясняется у внешнего сервиса по ключу идемпотентности, и только затем заявка
// финализируется. Перевод переотправляется тем же ключом, если сервис о нем не знает —
// двойная отправка исключена. Возвращает кол-во обработанных заявок.
func (w *WithdrawalService) Reconcile(ctx context.Context, olderThan time.Duration, limit uint) (int, error) {
	stale, staleErr := w.withdrawalRepo.GetStaleQueued(ctx, time.Now().UTC().Add(-olderThan), limit)
	if staleErr != nil {
		return 0, fmt.Errorf("fetching stale withdrawals: %w", staleErr)
	}

	processed := 0
	for i := range stale {
		if reconcileErr := w.reconcileOne(ctx, &stale[i]); reconcileErr != nil {
			w.logger.WithError(reconcileErr).WithField("withdrawal_id", stale[i].ID).
				Error("withdrawal reconciliation failed")
			continue
		}
		processed++
	}
	return processed, nil
}

func (w *WithdrawalService) reconcileOne(ctx context.Context, withdrawal *domain.Withdrawal) error {
	state, txRef, statusErr := w.transfer.Status(ctx, withdrawal.IdempotencyKey)
	if statusErr != nil {
		return fmt.Errorf("probing transfer status: %w", statusErr)
	}

	switch state {
	case domain.TransferStateSent:
		return w.withdrawalRepo.MarkSent(ctx, withdrawal.ID, txRef) //nolint:wrapcheck
	case domain.TransferStateFailed:
		_, failErr := w.finalizeFailed(ctx, withdrawal, "transfer failed on reconciliation")
		return failErr
	case domain.TransferStateUnknown:
		// сервис переводов ключа не видел: процесс упал до отправки, шлем заново
		_, settleErr := w.settle(ctx, withdrawal)
		return settleErr
	default:
		return fmt.Errorf("%w: unexpected transfer state %q", domain.ErrUnknown, state)
	}
}

// History последние выводы пользователя, новые первыми.
func (w *WithdrawalService) History(ctx context.Context, identity string, limit uint) ([]domain.Withdrawal, error) {
	withdrawals, err := w.withdrawalRepo.GetByIdentity(ctx, identity, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}
