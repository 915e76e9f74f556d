package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

const accountColumns = `id, created_at, updated_at, identity, username, referral_code, referred_by,
	sponsor_chain, payout_address, direct_refs, free, locked, bonus_earnings, plan_earnings`

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

// Create создает аккаунт. В случае конфликта identity или referral_code возвращает
// ошибку domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (a *AccountRepository) Create(ctx context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `
		INSERT INTO accounts (identity, username, referral_code)
		VALUES ($1, $2, $3)
		RETURNING `+accountColumns,
		args.Identity, args.Username, args.ReferralCode)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account for identity `%s`", args.Identity)
	}
	return account, nil
}

// FindByIdentity ищет аккаунт по identity. Возвращает ошибку domain.ErrRecordNotFound
// если запись не найдена.
func (a *AccountRepository) FindByIdentity(ctx context.Context, identity string) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE identity = $1`, identity)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by identity `%s`", identity)
	}
	return account, nil
}

func (a *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE referral_code = $1`, code)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by referral code `%s`", code)
	}
	return account, nil
}

// LockByIdentity читает аккаунт с блокировкой строки (FOR UPDATE). Вызывается только внутри
// транзакции: блокировка строки аккаунта сериализует все мутации по одному identity.
func (a *AccountRepository) LockByIdentity(ctx context.Context, identity string) (*domain.Account, error) {
	row := a.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE identity = $1 FOR UPDATE`, identity)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "locking account by identity `%s`", identity)
	}
	return account, nil
}

// CreditFree атомарно прибавляет delta к свободному балансу.
func (a *AccountRepository) CreditFree(ctx context.Context, identity string, delta decimal.Decimal) error {
	return a.applyDelta(ctx, identity, "free", delta)
}

// CreditBonus атомарно прибавляет delta к реферальному заработку.
func (a *AccountRepository) CreditBonus(ctx context.Context, identity string, delta decimal.Decimal) error {
	return a.applyDelta(ctx, identity, "bonus_earnings", delta)
}

// CreditPlanEarnings атомарно прибавляет delta к заработку с планов.
func (a *AccountRepository) CreditPlanEarnings(ctx context.Context, identity string, delta decimal.Decimal) error {
	return a.applyDelta(ctx, identity, "plan_earnings", delta)
}

func (a *AccountRepository) applyDelta(ctx context.Context, identity, column string, delta decimal.Decimal) error {
	// column подставляется только из белого списка вызовов выше.
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET `+column+` = `+column+` + $1, updated_at = now() WHERE identity = $2`,
		delta, identity)
	if err != nil {
		return convertErr(err, "crediting %s for identity `%s`", column, identity)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "crediting %s for identity `%s`", column, identity)
	}
	return nil
}

// MoveFreeToLocked атомарно переносит amount из free в locked. Если свободных средств
// не хватает, строка не меняется и возвращается domain.ErrNotEnoughFunds.
func (a *AccountRepository) MoveFreeToLocked(ctx context.Context, identity string, amount decimal.Decimal) error {
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET free = free - $1, locked = locked + $1, updated_at = now()
		WHERE identity = $2 AND free >= $1`,
		amount, identity)
	if err != nil {
		return convertErr(err, "locking funds for identity `%s`", identity)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEnoughFunds
	}
	return nil
}

// BurnLocked сжигает amount из locked. Капитал в free не возвращается.
func (a *AccountRepository) BurnLocked(ctx context.Context, identity string, amount decimal.Decimal) error {
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET locked = GREATEST(locked - $1, 0), updated_at = now() WHERE identity = $2`,
		amount, identity)
	if err != nil {
		return convertErr(err, "burning locked for identity `%s`", identity)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "burning locked for identity `%s`", identity)
	}
	return nil
}

// SetLocked выставляет locked в абсолютное значение. Единственный не-дельтовый апдейт баланса:
// используется только самолечением инварианта locked == sum(principal) под блокировкой строки.
func (a *AccountRepository) SetLocked(ctx context.Context, identity string, amount decimal.Decimal) error {
	_, err := a.conn.Exec(ctx, `
		UPDATE accounts SET locked = $1, updated_at = now() WHERE identity = $2`,
		amount, identity)
	return convertErr(err, "healing locked for identity `%s`", identity)
}

// ApplyEarningsDelta применяет дельты обоих пулов заработка одним атомарным апдейтом.
func (a *AccountRepository) ApplyEarningsDelta(ctx context.Context, args repoargs.EarningsDelta) error {
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET plan_earnings = plan_earnings + $1, bonus_earnings = bonus_earnings + $2,
			updated_at = now()
		WHERE identity = $3`,
		args.PlanDelta, args.BonusDelta, args.Identity)
	if err != nil {
		return convertErr(err, "applying earnings delta for identity `%s`", args.Identity)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "applying earnings delta for identity `%s`", args.Identity)
	}
	return nil
}

func (a *AccountRepository) SetPayoutAddress(ctx context.Context, identity, address string) error {
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET payout_address = $1, updated_at = now() WHERE identity = $2`,
		address, identity)
	if err != nil {
		return convertErr(err, "setting payout address for identity `%s`", identity)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "setting payout address for identity `%s`", identity)
	}
	return nil
}

// BindReferral одноразово привязывает аплайн. Guard `referred_by = ''` гарантирует что уже
// установленная привязка никогда не перезаписывается; в этом случае возвращается
// domain.ErrReferralBound.
func (a *AccountRepository) BindReferral(ctx context.Context, args repoargs.BindReferral) error {
	tag, err := a.conn.Exec(ctx, `
		UPDATE accounts SET referred_by = $1, sponsor_chain = $2, updated_at = now()
		WHERE identity = $3 AND referred_by = ''`,
		args.ReferredBy, args.SponsorChain, args.Identity)
	if err != nil {
		return convertErr(err, "binding referral for identity `%s`", args.Identity)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReferralBound
	}
	return nil
}

func (a *AccountRepository) IncrementDirectRefs(ctx context.Context, identity string) error {
	_, err := a.conn.Exec(ctx, `
		UPDATE accounts SET direct_refs = direct_refs + 1, updated_at = now() WHERE identity = $1`,
		identity)
	return convertErr(err, "incrementing direct refs for identity `%s`", identity)
}

// DownlineIdentities возвращает identity всех прямых рефералов для каждого identity из frontier.
// Используется для BFS-обхода сводки по уровням.
func (a *AccountRepository) DownlineIdentities(ctx context.Context, frontier []string) ([]string, error) {
	rows, err := a.conn.Query(ctx, `SELECT identity FROM accounts WHERE referred_by = ANY($1)`, frontier)
	if err != nil {
		return nil, convertErr(err, "getting downline identities")
	}
	defer rows.Close()

	var identities []string
	for rows.Next() {
		var identity string
		if scanErr := rows.Scan(&identity); scanErr != nil {
			return nil, convertErr(scanErr, "scanning downline identity")
		}
		identities = append(identities, identity)
	}
	return identities, convertErr(rows.Err(), "iterating downline identities")
}

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.CreatedAt, &acc.UpdatedAt, &acc.Identity, &acc.Username, &acc.ReferralCode,
		&acc.ReferredBy, &acc.SponsorChain, &acc.PayoutAddress, &acc.DirectRefs,
		&acc.Free, &acc.Locked, &acc.BonusEarnings, &acc.PlanEarnings,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
