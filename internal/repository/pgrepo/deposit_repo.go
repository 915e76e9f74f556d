package pgrepo

import (
	"context"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const depositColumns = `id, created_at, identity, amount, external_ref`

type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

// Create создает запись о депозите. Уникальность external_ref — арбитр идемпотентности:
// при повторе возвращается domain.ErrDuplicateKey.
func (d *DepositRepository) Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx, `
		INSERT INTO deposits (identity, amount, external_ref)
		VALUES ($1, $2, $3)
		RETURNING `+depositColumns,
		args.Identity, args.Amount, args.ExternalRef)

	deposit, err := scanDepositRow(row)
	if err != nil {
		return nil, convertErr(err, "creating deposit with ref `%s`", args.ExternalRef)
	}
	return deposit, nil
}

func (d *DepositRepository) FindByExternalRef(ctx context.Context, ref string) (*domain.Deposit, error) {
	row := d.conn.QueryRow(ctx, `SELECT `+depositColumns+` FROM deposits WHERE external_ref = $1`, ref)
	deposit, err := scanDepositRow(row)
	if err != nil {
		return nil, convertErr(err, "finding deposit by ref `%s`", ref)
	}
	return deposit, nil
}

// GetByIdentity возвращает депозиты пользователя, отсортированные по дате создания по убыванию.
func (d *DepositRepository) GetByIdentity(
	ctx context.Context,
	identity string,
	limit uint,
) ([]domain.Deposit, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := d.conn.Query(ctx, `
		SELECT `+depositColumns+` FROM deposits
		WHERE identity = $1 ORDER BY created_at DESC LIMIT $2`,
		identity, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting deposits for identity `%s`", identity)
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, scanErr := scanDepositRow(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning deposit")
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, convertErr(rows.Err(), "iterating deposits")
}

func scanDepositRow(row interface{ Scan(...any) error }) (*domain.Deposit, error) {
	var dep domain.Deposit
	if err := row.Scan(&dep.ID, &dep.CreatedAt, &dep.Identity, &dep.Amount, &dep.ExternalRef); err != nil {
		return nil, err
	}
	return &dep, nil
}
