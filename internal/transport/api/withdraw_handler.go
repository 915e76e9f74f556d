package api

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"net/http"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
)

const historyLimit = 50

type WithdrawHandler struct {
	withdrawals WithdrawalServicer
	ledger      LedgerServicer
}

func NewWithdrawHandler(withdrawals WithdrawalServicer, ledger LedgerServicer) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawals: withdrawals,
		ledger:      ledger,
	}
}

type WithdrawParams struct {
	Amount      decimal.Decimal `json:"amount"`
	Destination string          `json:"destination,omitempty"`
}

type WithdrawalResponseItem struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Destination string  `json:"destination"`
	Status      string  `json:"status"`
	TxRef       string  `json:"txRef,omitempty"`
	FailReason  string  `json:"failReason,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// Withdraw выводит заработок на внешний адрес. Заявка возвращается в своем фактическом
// статусе: sent, failed (средства уже возвращены) либо queued, если судьба перевода
// выяснится позже.
func (h *WithdrawHandler) Withdraw(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, withdrawTimeout)
	defer cancel()

	withdrawal, err := h.withdrawals.Request(reqCtx, identity, params.Amount, params.Destination)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughEarnings):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, withdrawalResponseItem(withdrawal))
}

type SetWalletParams struct {
	Address string `json:"address"`
}

// SetWallet сохраняет адрес выплат по умолчанию.
func (h *WithdrawHandler) SetWallet(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	var params SetWalletParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.withdrawals.SetPayoutAddress(reqCtx, identity, params.Address); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type DepositResponseItem struct {
	Amount      float64 `json:"amount"`
	ExternalRef string  `json:"externalRef"`
	CreatedAt   string  `json:"createdAt"`
}

type HistoryResponse struct {
	Deposits    []DepositResponseItem    `json:"deposits"`
	Withdrawals []WithdrawalResponseItem `json:"withdrawals"`
}

// History возвращает последние зачисления и выводы пользователя, новые первыми.
func (h *WithdrawHandler) History(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposits, depositsErr := h.ledger.Deposits(reqCtx, identity, historyLimit)
	if depositsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, depositsErr).SetType(gin.ErrorTypePrivate)
		return
	}

	withdrawals, withdrawalsErr := h.withdrawals.History(reqCtx, identity, historyLimit)
	if withdrawalsErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, withdrawalsErr).SetType(gin.ErrorTypePrivate)
		return
	}

	response := HistoryResponse{
		Deposits:    make([]DepositResponseItem, len(deposits)),
		Withdrawals: make([]WithdrawalResponseItem, len(withdrawals)),
	}
	for i, deposit := range deposits {
		response.Deposits[i] = DepositResponseItem{
			Amount:      deposit.Amount.InexactFloat64(),
			ExternalRef: deposit.ExternalRef,
			CreatedAt:   deposit.CreatedAt.Format(time.RFC3339),
		}
	}
	for i := range withdrawals {
		response.Withdrawals[i] = *withdrawalResponseItem(&withdrawals[i])
	}

	c.JSON(http.StatusOK, &response)
}

func withdrawalResponseItem(w *domain.Withdrawal) *WithdrawalResponseItem {
	return &WithdrawalResponseItem{
		ID:          w.ID,
		Amount:      w.Amount.InexactFloat64(),
		Destination: w.Destination,
		Status:      string(w.Status),
		TxRef:       w.TxRef,
		FailReason:  w.FailReason,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
}
