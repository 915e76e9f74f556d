package pgrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const planColumns = `id, created_at, updated_at, account_id, principal, daily_rate, start_at, end_at,
	duration, credited_periods, status, completed_at`

type PlanRepository struct {
	conn uow.DBTX
}

func NewPlanRepository(conn uow.DBTX) *PlanRepository {
	return &PlanRepository{conn: conn}
}

func (p *PlanRepository) Create(ctx context.Context, args repoargs.CreatePlan) (*domain.Plan, error) {
	row := p.conn.QueryRow(ctx, `
		INSERT INTO plans (account_id, principal, daily_rate, start_at, end_at, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+planColumns,
		args.AccountID, args.Principal, args.DailyRate, args.StartAt, args.EndAt, args.Duration)

	plan, err := scanPlanRow(row)
	if err != nil {
		return nil, convertErr(err, "creating plan for account %d", args.AccountID)
	}
	return plan, nil
}

// GetByAccountID возвращает все планы аккаунта, отсортированные по дате старта по возрастанию.
func (p *PlanRepository) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Plan, error) {
	rows, err := p.conn.Query(ctx, `
		SELECT `+planColumns+` FROM plans WHERE account_id = $1 ORDER BY start_at`, accountID)
	if err != nil {
		return nil, convertErr(err, "getting plans for account %d", accountID)
	}
	defer rows.Close()
	return scanPlans(rows)
}

// AdvanceCredited выполняет guarded-апдейт счетчика начисленных периодов: апдейт проходит только
// если credited_periods в базе все еще равен FromPeriods. Возвращает true если строка обновлена.
// Проигравший гонку начислитель получает false и не начисляет ничего.
func (p *PlanRepository) AdvanceCredited(ctx context.Context, args repoargs.AdvanceCredited) (bool, error) {
	tag, err := p.conn.Exec(ctx, `
		UPDATE plans SET credited_periods = $1, updated_at = now()
		WHERE id = $2 AND credited_periods = $3 AND status = 'active'`,
		args.ToPeriods, args.PlanID, args.FromPeriods)
	if err != nil {
		return false, convertErr(err, "advancing credited periods for plan %d", args.PlanID)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkCompleted однонаправленный перевод плана в статус completed.
func (p *PlanRepository) MarkCompleted(ctx context.Context, planID int64, completedAt time.Time) (bool, error) {
	tag, err := p.conn.Exec(ctx, `
		UPDATE plans SET status = 'completed', completed_at = $1, updated_at = now()
		WHERE id = $2 AND status = 'active'`,
		completedAt, planID)
	if err != nil {
		return false, convertErr(err, "completing plan %d", planID)
	}
	return tag.RowsAffected() > 0, nil
}

// SumActivePrincipal сумма principal по незавершенным планам аккаунта. Авторитетное значение
// для инварианта locked == sum(principal).
func (p *PlanRepository) SumActivePrincipal(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	row := p.conn.QueryRow(ctx, `
		SELECT COALESCE(SUM(principal), 0) FROM plans WHERE account_id = $1 AND status = 'active'`,
		accountID)
	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing active principal for account %d", accountID)
	}
	return sum, nil
}

// SumPrincipalByIdentities возвращает суммарный объем всех планов (включая завершенные)
// по срезу identity. Используется сводкой по рефералам.
func (p *PlanRepository) SumPrincipalByIdentities(
	ctx context.Context,
	identities []string,
) (decimal.Decimal, error) {
	row := p.conn.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.principal), 0)
		FROM plans p
		JOIN accounts a ON a.id = p.account_id
		WHERE a.identity = ANY($1)`,
		identities)
	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, convertErr(err, "summing principal by identities")
	}
	return sum, nil
}

// DistinctActiveIdentities возвращает страницу аккаунтов с хотя бы одним активным планом.
// Пагинация по id аккаунта для устойчивого обхода в фоновом свипе.
func (p *PlanRepository) DistinctActiveIdentities(
	ctx context.Context,
	afterAccountID int64,
	limit uint,
) ([]domain.ActiveAccountRef, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := p.conn.Query(ctx, `
		SELECT a.id, a.identity
		FROM accounts a
		WHERE a.id > $1 AND EXISTS (SELECT 1 FROM plans p WHERE p.account_id = a.id AND p.status = 'active')
		ORDER BY a.id
		LIMIT $2`,
		afterAccountID, safeLimit)
	if err != nil {
		return nil, convertErr(err, "getting active plan identities")
	}
	defer rows.Close()

	var refs []domain.ActiveAccountRef
	for rows.Next() {
		var ref domain.ActiveAccountRef
		if scanErr := rows.Scan(&ref.AccountID, &ref.Identity); scanErr != nil {
			return nil, convertErr(scanErr, "scanning active plan identity")
		}
		refs = append(refs, ref)
	}
	return refs, convertErr(rows.Err(), "iterating active plan identities")
}

func scanPlanRow(row interface{ Scan(...any) error }) (*domain.Plan, error) {
	var plan domain.Plan
	err := row.Scan(
		&plan.ID, &plan.CreatedAt, &plan.UpdatedAt, &plan.AccountID, &plan.Principal, &plan.DailyRate,
		&plan.StartAt, &plan.EndAt, &plan.Duration, &plan.CreditedPeriods, &plan.Status, &plan.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func scanPlans(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
},
) ([]domain.Plan, error) {
	var plans []domain.Plan
	for rows.Next() {
		plan, err := scanPlanRow(rows)
		if err != nil {
			return nil, convertErr(err, "scanning plan")
		}
		plans = append(plans, *plan)
	}
	return plans, convertErr(rows.Err(), "iterating plans")
}
