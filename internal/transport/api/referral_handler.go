package api

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"net/http"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
)

type ReferralHandler struct {
	referrals ReferralServicer
}

func NewReferralHandler(referrals ReferralServicer) *ReferralHandler {
	return &ReferralHandler{
		referrals: referrals,
	}
}

// Summary возвращает сводку по уровням даунлайна.
func (h *ReferralHandler) Summary(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	levels, err := h.referrals.Summary(reqCtx, identity)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, levels)
}

type BindParams struct {
	Code string `json:"code"`
}

// Bind одноразово привязывает пользователя к пригласившему.
func (h *ReferralHandler) Bind(c *gin.Context) {
	identity := middlewares.GetIdentity(c)

	var params BindParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	if params.Code == "" {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.referrals.Bind(reqCtx, identity, params.Code); err != nil {
		switch {
		case errors.Is(err, domain.ErrReferralBound):
			c.AbortWithStatus(http.StatusConflict)
		case errors.Is(err, domain.ErrSelfReferral):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
