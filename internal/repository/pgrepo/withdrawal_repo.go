package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const withdrawalColumns = `id, created_at, updated_at, identity, amount, destination, status, tx_ref,
	fail_reason, from_plan, from_bonus, idempotency_key`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

// Create создает заявку на вывод в статусе queued с точным разбиением списания.
func (w *WithdrawalRepository) Create(
	ctx context.Context,
	args repoargs.CreateWithdrawal,
) (*domain.Withdrawal, error) {
	row := w.conn.QueryRow(ctx, `
		INSERT INTO withdrawals (identity, amount, destination, from_plan, from_bonus, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+withdrawalColumns,
		args.Identity, args.Amount, args.Destination, args.FromPlan, args.FromBonus, args.IdempotencyKey)

	withdrawal, err := scanWithdrawalRow(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal for identity `%s`", args.Identity)
	}
	return withdrawal, nil
}

// MarkSent переводит заявку в терминальный статус sent. Guard по статусу queued не дает
// финализировать заявку дважды: повторный вызов вернет domain.ErrRecordNotFound.
func (w *WithdrawalRepository) MarkSent(ctx context.Context, id int64, txRef string) error {
	tag, err := w.conn.Exec(ctx, `
		UPDATE withdrawals SET status = 'sent', tx_ref = $1, updated_at = now()
		WHERE id = $2 AND status = 'queued'`,
		txRef, id)
	if err != nil {
		return convertErr(err, "marking withdrawal %d sent", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "marking withdrawal %d sent", id)
	}
	return nil
}

// MarkFailed переводит заявку в терминальный статус failed с причиной отказа.
func (w *WithdrawalRepository) MarkFailed(ctx context.Context, id int64, reason string) error {
	tag, err := w.conn.Exec(ctx, `
		UPDATE withdrawals SET status = 'failed', fail_reason = $1, updated_at = now()
		WHERE id = $2 AND status = 'queued'`,
		reason, id)
	if err != nil {
		return convertErr(err, "marking withdrawal %d failed", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "marking withdrawal %d failed", id)
	}
	return nil
}

// GetByIdentity возвращает заявки пользователя, отсортированные по дате создания по убыванию.
func (w *WithdrawalRepository) GetByIdentity(
	ctx context.Context,
	identity string,
	limit uint,
) ([]domain.Withdrawal, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := w.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE identity = $1 ORDER BY created_at DESC LIMIT $2`,
		identity, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals for identity `%s`", identity)
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

// GetStaleQueued возвращает заявки, зависшие в queued дольше порога. Выборка свипа восстановления.
func (w *WithdrawalRepository) GetStaleQueued(
	ctx context.Context,
	olderThan time.Time,
	limit uint,
) ([]domain.Withdrawal, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := w.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawals
		WHERE status = 'queued' AND created_at < $1
		ORDER BY created_at
		LIMIT $2`,
		olderThan, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting stale queued withdrawals")
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

func scanWithdrawalRow(row interface{ Scan(...any) error }) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(
		&wd.ID, &wd.CreatedAt, &wd.UpdatedAt, &wd.Identity, &wd.Amount, &wd.Destination, &wd.Status,
		&wd.TxRef, &wd.FailReason, &wd.FromPlan, &wd.FromBonus, &wd.IdempotencyKey,
	)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func scanWithdrawals(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
},
) ([]domain.Withdrawal, error) {
	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scanWithdrawalRow(rows)
		if err != nil {
			return nil, convertErr(err, "scanning withdrawal")
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, convertErr(rows.Err(), "iterating withdrawals")
}
