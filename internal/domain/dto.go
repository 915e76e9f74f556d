package domain

type PlanStatusType string

const (
	PlanStatusActive    PlanStatusType = "active"
	PlanStatusCompleted PlanStatusType = "completed"
)

type WithdrawalStatusType string

const (
	WithdrawalStatusQueued WithdrawalStatusType = "queued"
	WithdrawalStatusSent   WithdrawalStatusType = "sent"
	WithdrawalStatusFailed WithdrawalStatusType = "failed"
)

// TransferStateType статус перевода на платежном рельсе по ключу идемпотентности.
type TransferStateType string

const (
	TransferStateSent    TransferStateType = "sent"
	TransferStateFailed  TransferStateType = "failed"
	TransferStateUnknown TransferStateType = "unknown"
)

// ActiveAccountRef курсорная ссылка на аккаунт с активными планами для фоновой развертки.
type ActiveAccountRef struct {
	AccountID int64
	Identity  string
}
