package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const summaryCacheTTL = 60 * time.Second

// ReferralService аплайн-цепочки и выплаты с покупок. Цепочка спонсоров фиксируется
// один раз при привязке и далее не пересчитывается, даже если аплайн меняет свои связи.
type ReferralService struct {
	uow         uow.UOW
	accountRepo AccountRepository
	planRepo    PlanRepository
	cache       SummaryCache
	logger      *logrus.Entry
	levelRate   decimal.Decimal
}

// NewReferralService создает сервис. cache может быть nil — сводка тогда всегда
// считается напрямую из БД.
func NewReferralService(
	u uow.UOW,
	cache SummaryCache,
	logger *logrus.Entry,
	levelRate decimal.Decimal,
) (*ReferralService, error) {
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	planRepo, planErr := uow.GetRepositoryAs[PlanRepository](u, uow.RepositoryName(repoargs.PlanRepoName))
	if planErr != nil {
		return nil, planErr
	}
	return &ReferralService{
		uow:         u,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		cache:       cache,
		logger:      logger,
		levelRate:   levelRate,
	}, nil
}

// Bind одноразово привязывает identity к пригласившему по его реферальному коду
// (или напрямую по identity пригласившего).
//
// Алгоритм работы:
//  1. Повторная привязка отклоняется domain.ErrReferralBound, привязка к себе —
//     domain.ErrSelfReferral.
//  2. Цепочка спонсоров нового участника — пригласивший плюс его собственная цепочка,
//     обрезанная до domain.SponsorChainLimit уровней.
//  3. Привязка и инкремент счетчика прямых рефералов пригласившего коммитятся вместе;
//     guarded-апдейт отсекает гонку двух одновременных привязок.
func (r *ReferralService) Bind(ctx context.Context, identity string, code string) error {
	account, findErr := r.accountRepo.FindByIdentity(ctx, identity)
	if findErr != nil {
		return fmt.Errorf("binding referral: %w", findErr)
	}
	if account.ReferredBy != "" {
		return domain.ErrReferralBound
	}

	inviter, inviterErr := r.findInviter(ctx, code)
	if inviterErr != nil {
		return fmt.Errorf("binding referral: %w", inviterErr)
	}
	if inviter.Identity == identity {
		return domain.ErrSelfReferral
	}

	chain := make([]string, 0, domain.SponsorChainLimit)
	chain = append(chain, inviter.Identity)
	chain = append(chain, inviter.SponsorChain...)
	if len(chain) > domain.SponsorChainLimit {
		chain = chain[:domain.SponsorChainLimit]
	}

	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}
		bindErr := accountRepo.BindReferral(c, repoargs.BindReferral{
			Identity:     identity,
			ReferredBy:   inviter.Identity,
			SponsorChain: chain,
		})
		if bindErr != nil {
			return bindErr //nolint:wrapcheck
		}
		return accountRepo.IncrementDirectRefs(c, inviter.Identity) //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrReferralBound) {
			return domain.ErrReferralBound
		}
		return fmt.Errorf("binding referral: %w", txErr)
	}
	return nil
}

// findInviter ищет пригласившего сначала по реферальному коду, затем по identity.
func (r *ReferralService) findInviter(ctx context.Context, code string) (*domain.Account, error) {
	inviter, byCodeErr := r.accountRepo.FindByReferralCode(ctx, code)
	if byCodeErr == nil {
		return inviter, nil
	}
	if !errors.Is(byCodeErr, domain.ErrRecordNotFound) {
		return nil, byCodeErr
	}
	return r.accountRepo.FindByIdentity(ctx, code) //nolint:wrapcheck
}

// Payout начисляет спонсорам покупателя по levelRate от суммы покупки — плоская ставка,
// одинаковая на каждом из до domain.SponsorChainLimit уровней. Каждая выплата независима:
// неудача на одном уровне логируется и не откатывает остальные. Спонсор, совпадающий
// с покупателем, пропускается.
func (r *ReferralService) Payout(ctx context.Context, purchaser string, amount decimal.Decimal) {
	bonus := amount.Mul(r.levelRate).Round(2)
	if !bonus.IsPositive() {
		return
	}

	account, findErr := r.accountRepo.FindByIdentity(ctx, purchaser)
	if findErr != nil {
		r.logger.WithError(findErr).WithField("identity", purchaser).Error("referral payout: purchaser lookup failed")
		return
	}

	for level, sponsor := range account.SponsorChain {
		if sponsor == purchaser {
			continue
		}
		if creditErr := r.accountRepo.CreditBonus(ctx, sponsor, bonus); creditErr != nil {
			r.logger.WithError(creditErr).WithFields(logrus.Fields{
				"sponsor": sponsor,
				"level":   level + 1,
			}).Error("referral payout: level credit failed")
		}
	}
}

// Summary строит сводку по уровням даунлайна: кол-во участников, их совокупный объем
// вложений (включая завершенные планы) и бонус с этого объема. Всегда возвращает ровно
// domain.SponsorChainLimit строк — пустые уровни заполняются нулями. Read-модель,
// балансы не трогает; результат кешируется на summaryCacheTTL, промах и недоступность
// кеша равнозначны.
func (r *ReferralService) Summary(ctx context.Context, identity string) ([]domain.ReferralLevel, error) {
	if r.cache != nil {
		if levels, ok := r.cache.GetSummary(ctx, identity); ok {
			return levels, nil
		}
	}

	levels := make([]domain.ReferralLevel, 0, domain.SponsorChainLimit)
	frontier := []string{identity}

	for level := int32(1); level <= domain.SponsorChainLimit; level++ {
		if len(frontier) == 0 {
			levels = append(levels, domain.ReferralLevel{
				Level:    level,
				Volume:   decimal.Zero,
				Earnings: decimal.Zero,
			})
			continue
		}

		kids, kidsErr := r.accountRepo.DownlineIdentities(ctx, frontier)
		if kidsErr != nil {
			return nil, fmt.Errorf("building referral summary: %w", kidsErr)
		}
		frontier = kids
		if len(kids) == 0 {
			levels = append(levels, domain.ReferralLevel{
				Level:    level,
				Volume:   decimal.Zero,
				Earnings: decimal.Zero,
			})
			continue
		}

		volume, volumeErr := r.planRepo.SumPrincipalByIdentities(ctx, kids)
		if volumeErr != nil {
			return nil, fmt.Errorf("building referral summary: %w", volumeErr)
		}

		levels = append(levels, domain.ReferralLevel{
			Level:    level,
			Count:    int64(len(kids)),
			Volume:   volume,
			Earnings: volume.Mul(r.levelRate).Round(2),
		})
	}

	if r.cache != nil {
		r.cache.SetSummary(ctx, identity, levels, summaryCacheTTL)
	}
	return levels, nil
}
