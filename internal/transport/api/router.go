package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// withdrawTimeout учитывает внешний перевод внутри запроса.
	withdrawTimeout = 15 * time.Second
)

const (
	RouteGroup          = "/api"
	MeRoute             = "/me"
	DepositAddressRoute = "/deposit/address"
	InvestBuyRoute      = "/invest/buy"
	InvestTiersRoute    = "/invest/tiers"
	EarningsConvRoute   = "/earnings/convert"
	WithdrawRoute       = "/withdraw"
	ProfileWalletRoute  = "/profile/wallet"
	ReferralsRoute      = "/referrals"
	ReferralsBindRoute  = "/referrals/bind"
	HistoryRoute        = "/history"
	DepositsNotifyRoute = "/_internal/deposits"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	Ledger        LedgerServicer
	Plans         PlanServicer
	Referrals     ReferralServicer
	Withdrawals   WithdrawalServicer
	Allocator     AllocatorServicer
	InternalToken string
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.Ledger, args.Plans)
	investHandler := NewInvestHandler(args.Plans, args.Ledger)
	depositHandler := NewDepositHandler(args.Allocator, args.Ledger)
	withdrawHandler := NewWithdrawHandler(args.Withdrawals, args.Ledger)
	referralHandler := NewReferralHandler(args.Referrals)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group(RouteGroup)

	api.POST(DepositsNotifyRoute, middlewares.InternalTokenRequired(args.InternalToken), depositHandler.Notify)

	api.Use(middlewares.IdentityRequired())
	// ниже все роуты группы требуют заголовка identity.
	api.GET(MeRoute, accountHandler.Me)
	api.GET(DepositAddressRoute, depositHandler.Address)
	api.POST(InvestBuyRoute, investHandler.Buy)
	api.GET(InvestTiersRoute, investHandler.Tiers)
	api.POST(EarningsConvRoute, investHandler.Convert)
	api.POST(WithdrawRoute, withdrawHandler.Withdraw)
	api.POST(ProfileWalletRoute, withdrawHandler.SetWallet)
	api.GET(ReferralsRoute, referralHandler.Summary)
	api.POST(ReferralsBindRoute, referralHandler.Bind)
	api.GET(HistoryRoute, withdrawHandler.History)
	return r
}
