package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	bip39 "github.com/tyler-smith/go-bip39"

	"github.com/fsdevblog/qvest/internal/domain"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	TransferAddress string `env:"TRANSFER_ADDRESS"`
	InternalToken   string `env:"INTERNAL_TOKEN"`

	WalletMnemonic     string `env:"WALLET_MNEMONIC"`
	DerivationBasePath string `env:"DERIVATION_BASE_PATH" envDefault:"m/44'/60'/0'/0"`
	AllocStartIndex    int64  `env:"ALLOC_START_INDEX" envDefault:"0"`

	RateSchedule        string  `env:"RATE_SCHEDULE" envDefault:"standard"`
	PlanDurationPeriods int32   `env:"PLAN_DURATION_PERIODS" envDefault:"20"`
	PeriodMinutes       int64   `env:"PERIOD_MINUTES" envDefault:"1440"`
	MinPurchase         float64 `env:"MIN_PURCHASE" envDefault:"20"`
	MinWithdrawal       float64 `env:"MIN_WITHDRAWAL" envDefault:"5"`
	ReferralPercent     float64 `env:"REFERRAL_PERCENT" envDefault:"1"`
	ConvertBonusPercent float64 `env:"CONVERT_BONUS_PERCENT" envDefault:"3"`

	SweepIntervalSeconds      int64 `env:"SWEEP_INTERVAL_SECONDS" envDefault:"60"`
	ReconcileStaleAfterMinute int64 `env:"RECONCILE_STALE_AFTER_MINUTES" envDefault:"5"`
}

func LoadConfig() (*Config, error) {
	// .env подхватывается только если файл существует, молча.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.WalletMnemonic == "" {
		return nil, errors.New("wallet mnemonic is not set")
	}
	if !bip39.IsMnemonicValid(conf.WalletMnemonic) {
		return nil, errors.New("wallet mnemonic is invalid")
	}
	if _, tiersErr := RateTiers(conf.RateSchedule); tiersErr != nil {
		return nil, tiersErr
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.TransferAddress, "t", "", "Transfer service address")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	merged.TransferAddress = defaultIfBlank(envConfig.TransferAddress, flagsConfig.TransferAddress)
	merged.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// percent переводит проценты в долю: 1.1 -> 0.011.
func percent(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Div(decimal.NewFromInt(100))
}

// RateTiers возвращает сетку дневных ставок для схемы schedule. Сетка всегда
// замыкается ступенью без верхней границы.
func RateTiers(schedule string) ([]domain.RateTier, error) {
	switch schedule {
	case "standard":
		return []domain.RateTier{
			{UpTo: decimal.NewFromInt(100), Rate: percent(1.1)},
			{UpTo: decimal.NewFromInt(250), Rate: percent(1.2)},
			{UpTo: decimal.NewFromInt(1000), Rate: percent(1.3)},
			{UpTo: decimal.NewFromInt(5000), Rate: percent(1.5)},
			{Rate: percent(1.8)},
		}, nil
	case "aggressive":
		return []domain.RateTier{
			{UpTo: decimal.NewFromInt(100), Rate: percent(6.1)},
			{UpTo: decimal.NewFromInt(250), Rate: percent(6.3)},
			{UpTo: decimal.NewFromInt(1000), Rate: percent(6.5)},
			{UpTo: decimal.NewFromInt(5000), Rate: percent(6.6)},
			{Rate: percent(6.8)},
		}, nil
	default:
		return nil, fmt.Errorf("unknown rate schedule %q", schedule)
	}
}
