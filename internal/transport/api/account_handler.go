package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"net/http"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
)

type AccountHandler struct {
	ledger LedgerServicer
	plans  PlanServicer
}

func NewAccountHandler(ledger LedgerServicer, plans PlanServicer) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		plans:  plans,
	}
}

type BalancesResponse struct {
	Free          float64 `json:"free"`
	Locked        float64 `json:"locked"`
	BonusEarnings float64 `json:"bonusEarnings"`
	PlanEarnings  float64 `json:"planEarnings"`
}

type PlanResponseItem struct {
	ID              int64   `json:"id"`
	Principal       float64 `json:"principal"`
	DailyRate       string  `json:"dailyRate"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	Duration        int32   `json:"duration"`
	CreditedPeriods int32   `json:"creditedPeriods"`
	Status          string  `json:"status"`
}

type MeResponse struct {
	Identity     string             `json:"identity"`
	ReferralCode string             `json:"referralCode"`
	ReferredBy   string             `json:"referredBy,omitempty"`
	DirectRefs   int64              `json:"directRefs"`
	Balances     BalancesResponse   `json:"balances"`
	Plans        []PlanResponseItem `json:"plans"`
}

// Me возвращает состояние аккаунта, создавая его при первом обращении. Перед чтением
// доначисляются созревшие периоды активных планов, так что балансы всегда актуальны.
func (a *AccountHandler) Me(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, ensureErr := a.ledger.Ensure(reqCtx, identity, middlewares.GetUsername(c)); ensureErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ensureErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if creditErr := a.plans.CreditDue(reqCtx, identity); creditErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, creditErr).SetType(gin.ErrorTypePrivate)
		return
	}

	account, accountErr := a.ledger.Ensure(reqCtx, identity, middlewares.GetUsername(c))
	if accountErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, accountErr).SetType(gin.ErrorTypePrivate)
		return
	}

	plans, plansErr := a.plans.Plans(reqCtx, account.ID)
	if plansErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, plansErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &MeResponse{
		Identity:     account.Identity,
		ReferralCode: account.ReferralCode,
		ReferredBy:   account.ReferredBy,
		DirectRefs:   account.DirectRefs,
		Balances: BalancesResponse{
			Free:          account.Free.InexactFloat64(),
			Locked:        account.Locked.InexactFloat64(),
			BonusEarnings: account.BonusEarnings.InexactFloat64(),
			PlanEarnings:  account.PlanEarnings.InexactFloat64(),
		},
		Plans: planResponseItems(plans),
	})
}

func planResponseItems(plans []domain.Plan) []PlanResponseItem {
	items := make([]PlanResponseItem, len(plans))
	for i, plan := range plans {
		items[i] = PlanResponseItem{
			ID:              plan.ID,
			Principal:       plan.Principal.InexactFloat64(),
			DailyRate:       plan.DailyRate.String(),
			StartAt:         plan.StartAt.Format(time.RFC3339),
			EndAt:           plan.EndAt.Format(time.RFC3339),
			Duration:        plan.Duration,
			CreditedPeriods: plan.CreditedPeriods,
			Status:          string(plan.Status),
		}
	}
	return items
}
