package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/qvest/internal/repository/repoargs"

	"github.com/fsdevblog/qvest/internal/transport/transfer"

	"github.com/fsdevblog/qvest/pkg/uow"

	"github.com/fsdevblog/qvest/internal/config"
	"github.com/fsdevblog/qvest/internal/repository/pgrepo"
	"github.com/fsdevblog/qvest/internal/repository/rediscache"
	"github.com/fsdevblog/qvest/internal/service"
	"github.com/fsdevblog/qvest/internal/service/hdkey"
	"github.com/fsdevblog/qvest/internal/transport/api"
	"github.com/fsdevblog/qvest/internal/worker"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	deriver, deriverErr := hdkey.NewDeriver(a.Config.WalletMnemonic, a.Config.DerivationBasePath)
	if deriverErr != nil {
		return fmt.Errorf("app run: %s", deriverErr.Error())
	}

	tiers, tiersErr := config.RateTiers(a.Config.RateSchedule)
	if tiersErr != nil {
		return fmt.Errorf("app run: %s", tiersErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryParams{
		Transfer:     transfer.New(a.Config.TransferAddress),
		Deriver:      deriver,
		SummaryCache: a.initSummaryCache(notifyCtx),
		Logger:       a.Logger.WithField("component", "service"),
		Plan: service.PlanServiceParams{
			MinPurchase:  decimal.NewFromFloat(a.Config.MinPurchase),
			Tiers:        tiers,
			Duration:     a.Config.PlanDurationPeriods,
			PeriodLength: time.Duration(a.Config.PeriodMinutes) * time.Minute,
		},
		MinWithdrawal:    decimal.NewFromFloat(a.Config.MinWithdrawal),
		ReferralRate:     decimal.NewFromFloat(a.Config.ReferralPercent).Div(decimal.NewFromInt(100)), //nolint:mnd
		ConvertBonusRate: decimal.NewFromFloat(a.Config.ConvertBonusPercent).Div(decimal.NewFromInt(100)), //nolint:mnd
		AllocStartIndex:  a.Config.AllocStartIndex,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:        a.Logger,
		Ledger:        services.Ledger,
		Plans:         services.Plans,
		Referrals:     services.Referrals,
		Withdrawals:   services.Withdrawals,
		Allocator:     services.Allocator,
		InternalToken: a.Config.InternalToken,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	sweeper := worker.NewSweeper(services.Plans, a.Logger).
		SetInterval(time.Duration(a.Config.SweepIntervalSeconds) * time.Second)
	go sweeper.Run(notifyCtx)

	reconciler := worker.NewReconciler(services.Withdrawals, a.Logger).
		SetStaleAfter(time.Duration(a.Config.ReconcileStaleAfterMinute) * time.Minute)
	go reconciler.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initSummaryCache поднимает кеш сводок, если Redis сконфигурирован. Недоступность
// Redis не мешает старту: сервис работает без кеша.
func (a *App) initSummaryCache(ctx context.Context) service.SummaryCache {
	if a.Config.RedisAddr == "" {
		return nil
	}
	rdb, rdbErr := rediscache.Connect(ctx, a.Config.RedisAddr, a.Config.RedisPassword)
	if rdbErr != nil {
		a.Logger.WithError(rdbErr).Warn("redis unavailable, referral summary cache disabled")
		return nil
	}
	return rediscache.New(rdb, a.Logger)
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[string]uow.RepositoryFactory{
		repoargs.AccountRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAccountRepository(dbtx) },
		repoargs.PlanRepoName:       func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPlanRepository(dbtx) },
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWithdrawalRepository(dbtx) },
		repoargs.DepositRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewDepositRepository(dbtx) },
		repoargs.AllocationRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAllocationRepository(dbtx) },
		repoargs.CounterRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCounterRepository(dbtx) },
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
