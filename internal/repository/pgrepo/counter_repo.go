package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/pkg/uow"
)

type CounterRepository struct {
	conn uow.DBTX
}

func NewCounterRepository(conn uow.DBTX) *CounterRepository {
	return &CounterRepository{conn: conn}
}

// ReserveNextIndex атомарно резервирует следующий индекс глобального счетчика и возвращает его.
// Счетчик создается лениво первым вызовом. Инкремент и чтение — один стейтмент, поэтому два
// конкурентных вызова никогда не получат одинаковый индекс. Если строка счетчика пропала между
// upsert и инкрементом, возвращается domain.ErrCounterUnavailable (повторяемая ошибка).
func (c *CounterRepository) ReserveNextIndex(ctx context.Context, key string, startAt int64) (int64, error) {
	_, upsertErr := c.conn.Exec(ctx, `
		INSERT INTO sys_counters (key, next_index) VALUES ($1, $2)
		ON CONFLICT (key) DO NOTHING`,
		key, startAt)
	if upsertErr != nil {
		return 0, convertErr(upsertErr, "ensuring counter `%s`", key)
	}

	row := c.conn.QueryRow(ctx, `
		UPDATE sys_counters SET next_index = next_index + 1 WHERE key = $1
		RETURNING next_index - 1`,
		key)

	var reserved int64
	if scanErr := row.Scan(&reserved); scanErr != nil {
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return 0, domain.ErrCounterUnavailable
		}
		return 0, convertErr(scanErr, "reserving next index for counter `%s`", key)
	}
	return reserved, nil
}
