package pgrepo

import (
	"context"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const allocationColumns = `id, created_at, identity, derivation_index, address`

type AllocationRepository struct {
	conn uow.DBTX
}

func NewAllocationRepository(conn uow.DBTX) *AllocationRepository {
	return &AllocationRepository{conn: conn}
}

// Create сохраняет кортеж (identity, index, address). Уникальные констрейнты на identity и
// derivation_index — финальный арбитр гонок: проигравший получает domain.ErrDuplicateKey.
func (a *AllocationRepository) Create(
	ctx context.Context,
	args repoargs.CreateAllocation,
) (*domain.Allocation, error) {
	row := a.conn.QueryRow(ctx, `
		INSERT INTO allocations (identity, derivation_index, address)
		VALUES ($1, $2, $3)
		RETURNING `+allocationColumns,
		args.Identity, args.DerivationIndex, args.Address)

	allocation, err := scanAllocationRow(row)
	if err != nil {
		return nil, convertErr(err, "creating allocation for identity `%s`", args.Identity)
	}
	return allocation, nil
}

func (a *AllocationRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Allocation, error) {
	row := a.conn.QueryRow(ctx, `
		SELECT `+allocationColumns+` FROM allocations WHERE identity = $1`, identity)
	allocation, err := scanAllocationRow(row)
	if err != nil {
		return nil, convertErr(err, "finding allocation by identity `%s`", identity)
	}
	return allocation, nil
}

func scanAllocationRow(row interface{ Scan(...any) error }) (*domain.Allocation, error) {
	var alloc domain.Allocation
	err := row.Scan(&alloc.ID, &alloc.CreatedAt, &alloc.Identity, &alloc.DerivationIndex, &alloc.Address)
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}
