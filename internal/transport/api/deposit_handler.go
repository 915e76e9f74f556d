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

type DepositHandler struct {
	allocator AllocatorServicer
	ledger    LedgerServicer
}

func NewDepositHandler(allocator AllocatorServicer, ledger LedgerServicer) *DepositHandler {
	return &DepositHandler{
		allocator: allocator,
		ledger:    ledger,
	}
}

type DepositAddressResponse struct {
	Address string `json:"address"`
}

// Address возвращает постоянный депозитный адрес пользователя, выдавая его при
// первом обращении.
func (h *DepositHandler) Address(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	allocation, err := h.allocator.Allocate(reqCtx, identity)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &DepositAddressResponse{Address: allocation.Address})
}

type DepositNotifyParams struct {
	Identity    string          `json:"identity"`
	Amount      decimal.Decimal `json:"amount"`
	ExternalRef string          `json:"externalRef"`
}

type DepositNotifyResponse struct {
	Credited        bool `json:"credited"`
	AlreadyCredited bool `json:"alreadyCredited"`
}

// Notify внутренний колбек платежного рельса о зачислении. Идемпотентен по externalRef.
func (h *DepositHandler) Notify(c *gin.Context) {
	var params DepositNotifyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Identity == "" || params.ExternalRef == "" {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.ledger.CreditDeposit(reqCtx, params.Identity, params.Amount, params.ExternalRef)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &DepositNotifyResponse{
		Credited:        !result.AlreadyCredited,
		AlreadyCredited: result.AlreadyCredited,
	})
}
