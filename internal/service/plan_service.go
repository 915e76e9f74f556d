package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

// PlanServiceParams продуктовые параметры движка планов.
type PlanServiceParams struct {
	// MinPurchase минимальная сумма покупки плана.
	MinPurchase decimal.Decimal
	// Tiers ступени дневной ставки, отсортированы по возрастанию UpTo;
	// последняя ступень с нулевым UpTo — без верхней границы.
	Tiers []domain.RateTier
	// Duration кол-во периодов начисления в плане.
	Duration int32
	// PeriodLength длительность одного периода. В проде сутки, на стендах сжимается.
	PeriodLength time.Duration
}

// PlanService движок инвестиционных планов: покупка, ленивое доначисление
// и завершение со сжиганием принципала.
type PlanService struct {
	uow         uow.UOW
	accountRepo AccountRepository
	planRepo    PlanRepository
	payouter    Payouter
	params      PlanServiceParams
}

func NewPlanService(u uow.UOW, payouter Payouter, params PlanServiceParams) (*PlanService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	planRepo, planErr := uow.GetRepositoryAs[PlanRepository](u, uow.RepositoryName(repoargs.PlanRepoName))
	if planErr != nil {
		return nil, planErr
	}
	return &PlanService{
		uow:         u,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		payouter:    payouter,
		params:      params,
	}, nil
}

// Tiers возвращает действующую сетку ставок.
func (p *PlanService) Tiers() []domain.RateTier {
	return p.params.Tiers
}

// RateFor подбирает дневную ставку под сумму покупки: первая ступень, чей UpTo
// не меньше суммы; ступень без границы ловит все, что выше.
func (p *PlanService) RateFor(amount decimal.Decimal) decimal.Decimal {
	for _, tier := range p.params.Tiers {
		if tier.UpTo.IsZero() || amount.LessThanOrEqual(tier.UpTo) {
			return tier.Rate
		}
	}
	// сетка всегда замыкается безграничной ступенью, сюда попадать не должны
	return p.params.Tiers[len(p.params.Tiers)-1].Rate
}

// Purchase покупает план на amount из свободного баланса.
//
// Параметры:
//   - ctx: контекст для управления жизненным циклом
//   - identity: ключ аккаунта покупателя
//   - amount: сумма покупки, становится принципалом плана.
//
// Алгоритм работы:
//  1. Сумма валидируется против продуктового минимума, ставка фиксируется по сетке
//     на момент покупки и не меняется до конца срока.
//  2. В транзакции аккаунт блокируется построчно, amount переносится из free в locked
//     (нехватка — domain.ErrNotEnoughFunds), создается запись плана.
//  3. После коммита синхронно запускаются реферальные выплаты с суммы покупки;
//     их неудачи на результат покупки не влияют.
func (p *PlanService) Purchase(ctx context.Context, identity string, amount decimal.Decimal) (*domain.Plan, error) {
	amount = amount.Round(2)
	if amount.LessThan(p.params.MinPurchase) {
		return nil, &domain.BelowMinimumError{Minimum: p.params.MinPurchase, Got: amount}
	}

	rate := p.RateFor(amount)
	now := time.Now().UTC()

	var plan *domain.Plan

	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}
		planRepo, planErr := uow.GetAs[PlanRepository](tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planErr != nil {
			return planErr //nolint:wrapcheck
		}

		account, lockErr := accountRepo.LockByIdentity(c, identity)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		if moveErr := accountRepo.MoveFreeToLocked(c, identity, amount); moveErr != nil {
			return moveErr //nolint:wrapcheck
		}

		created, createErr := planRepo.Create(c, repoargs.CreatePlan{
			AccountID: account.ID,
			Principal: amount,
			DailyRate: rate,
			StartAt:   now,
			EndAt:     now.Add(time.Duration(p.params.Duration) * p.params.PeriodLength),
			Duration:  p.params.Duration,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		plan = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("purchasing plan: %w", txErr)
	}

	p.payouter.Payout(ctx, identity, amount)

	return plan, nil
}

// CreditDue доначисляет все созревшие, но еще не зачисленные периоды по активным
// планам аккаунта. Вызывается лениво при каждом чтении состояния и фоновой разверткой;
// повторный вызов без новых созревших периодов ничего не меняет.
//
// Алгоритм работы:
//  1. Аккаунт блокируется построчно — на время транзакции никто другой не начисляет.
//  2. Для каждого активного плана считается floor числа прошедших периодов (кап по
//     Duration). Продвижение счетчика — guarded CAS от прочитанного значения, поэтому
//     двойное зачисление одного периода исключено даже при гонке.
//  3. Доначисление за n периодов: principal * rate * n с округлением до 2 знаков.
//  4. План, дошедший до Duration, помечается completed, его принципал сжигается
//     из locked (в free не возвращается).
//  5. В конце locked сверяется с суммой принципалов оставшихся активных планов и при
//     расхождении перезаписывается этой суммой.
func (p *PlanService) CreditDue(ctx context.Context, identity string) error {
	now := time.Now().UTC()

	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}
		planRepo, planErr := uow.GetAs[PlanRepository](tx, uow.RepositoryName(repoargs.PlanRepoName))
		if planErr != nil {
			return planErr //nolint:wrapcheck
		}

		account, lockErr := accountRepo.LockByIdentity(c, identity)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		plans, plansErr := planRepo.GetByAccountID(c, account.ID)
		if plansErr != nil {
			return plansErr //nolint:wrapcheck
		}

		totalDue := decimal.Zero
		burned := decimal.Zero

		for i := range plans {
			plan := &plans[i]
			if plan.Status != domain.PlanStatusActive {
				continue
			}

			elapsed := p.elapsedPeriods(plan, now)
			if elapsed > plan.CreditedPeriods {
				advanced, advErr := planRepo.AdvanceCredited(c, repoargs.AdvanceCredited{
					PlanID:      plan.ID,
					FromPeriods: plan.CreditedPeriods,
					ToPeriods:   elapsed,
				})
				if advErr != nil {
					return advErr //nolint:wrapcheck
				}
				if !advanced {
					continue
				}

				n := decimal.NewFromInt(int64(elapsed - plan.CreditedPeriods))
				totalDue = totalDue.Add(plan.Principal.Mul(plan.DailyRate).Mul(n).Round(2))
			}

			if elapsed >= plan.Duration {
				completed, complErr := planRepo.MarkCompleted(c, plan.ID, now)
				if complErr != nil {
					return complErr //nolint:wrapcheck
				}
				if completed {
					if burnErr := accountRepo.BurnLocked(c, identity, plan.Principal); burnErr != nil {
						return burnErr //nolint:wrapcheck
					}
					burned = burned.Add(plan.Principal)
				}
			}
		}

		if totalDue.IsPositive() {
			if creditErr := accountRepo.CreditPlanEarnings(c, identity, totalDue); creditErr != nil {
				return creditErr //nolint:wrapcheck
			}
		}

		return p.healLocked(c, accountRepo, planRepo, account, burned)
	})
	if txErr != nil {
		return fmt.Errorf("crediting due periods: %w", txErr)
	}
	return nil
}

// healLocked сверяет locked с суммой принципалов активных планов и чинит расхождение.
// Единственное место, где балансовое поле перезаписывается абсолютом.
func (p *PlanService) healLocked(
	ctx context.Context,
	accountRepo AccountRepository,
	planRepo PlanRepository,
	account *domain.Account,
	burned decimal.Decimal,
) error {
	expected, sumErr := planRepo.SumActivePrincipal(ctx, account.ID)
	if sumErr != nil {
		return sumErr //nolint:wrapcheck
	}
	lockedNow := account.Locked.Sub(burned)
	if lockedNow.IsNegative() {
		lockedNow = decimal.Zero
	}
	if expected.Equal(lockedNow) {
		return nil
	}
	return accountRepo.SetLocked(ctx, account.Identity, expected) //nolint:wrapcheck
}

func (p *PlanService) elapsedPeriods(plan *domain.Plan, now time.Time) int32 {
	if now.Before(plan.StartAt) {
		return 0
	}
	elapsed := int64(now.Sub(plan.StartAt) / p.params.PeriodLength)
	if elapsed > int64(plan.Duration) {
		return plan.Duration
	}
	return int32(elapsed)
}

// Plans возвращает все планы аккаунта, новые первыми.
func (p *PlanService) Plans(ctx context.Context, accountID int64) ([]domain.Plan, error) {
	plans, err := p.planRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return plans, nil
}

// ActiveAccounts страница аккаунтов с активными планами для фоновой развертки.
// Курсор — последний обработанный account id.
func (p *PlanService) ActiveAccounts(
	ctx context.Context,
	afterAccountID int64,
	limit uint,
) ([]domain.ActiveAccountRef, error) {
	refs, err := p.planRepo.DistinctActiveIdentities(ctx, afterAccountID, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return refs, nil
}
