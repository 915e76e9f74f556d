package api

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"net/http"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
)

type InvestHandler struct {
	plans  PlanServicer
	ledger LedgerServicer
}

func NewInvestHandler(plans PlanServicer, ledger LedgerServicer) *InvestHandler {
	return &InvestHandler{
		plans:  plans,
		ledger: ledger,
	}
}

type BuyParams struct {
	Amount decimal.Decimal `json:"amount"`
}

// Buy покупает план на сумму из свободного баланса.
func (h *InvestHandler) Buy(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	var params BuyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	plan, err := h.plans.Purchase(reqCtx, identity, params.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughFunds):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	items := planResponseItems([]domain.Plan{*plan})
	c.JSON(http.StatusCreated, &items[0])
}

type TierResponseItem struct {
	UpTo string `json:"upTo,omitempty"`
	Rate string `json:"rate"`
}

// Tiers возвращает действующую сетку дневных ставок.
func (h *InvestHandler) Tiers(c *gin.Context) {
	tiers := h.plans.Tiers()
	response := make([]TierResponseItem, len(tiers))
	for i, tier := range tiers {
		item := TierResponseItem{Rate: tier.Rate.String()}
		if !tier.UpTo.IsZero() {
			item.UpTo = tier.UpTo.String()
		}
		response[i] = item
	}
	c.JSON(http.StatusOK, response)
}

type ConvertResponse struct {
	Transferred float64 `json:"transferred"`
	Bonus       float64 `json:"bonus"`
	Credited    float64 `json:"credited"`
}

// Convert переводит весь накопленный заработок в свободный баланс с надбавкой.
func (h *InvestHandler) Convert(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.ledger.ConvertEarningsToFree(reqCtx, identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughEarnings):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &ConvertResponse{
		Transferred: result.Transferred.InexactFloat64(),
		Bonus:       result.Bonus.InexactFloat64(),
		Credited:    result.Credited.InexactFloat64(),
	})
}
