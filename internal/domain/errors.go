package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrNotEnoughFunds     = errors.New("not enough funds")
	ErrNotEnoughEarnings  = errors.New("not enough earnings")
	ErrValidation         = errors.New("validation error")
	ErrReferralBound      = errors.New("referral already bound")
	ErrSelfReferral       = errors.New("self referral")
	ErrCounterUnavailable = errors.New("derivation counter unavailable")
)

// BelowMinimumError ошибка валидации суммы ниже продуктового минимума.
type BelowMinimumError struct {
	Minimum decimal.Decimal
	Got     decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("amount %s is below minimum %s", e.Got, e.Minimum)
}

func (e *BelowMinimumError) Unwrap() error {
	return ErrValidation
}

// TransferFailedError неудача внешнего перевода. Для вызывающего это не исключение:
// заявка помечена failed, средства уже возвращены.
type TransferFailedError struct {
	Reason    string
	Transient bool
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("external transfer failed: %s", e.Reason)
}
