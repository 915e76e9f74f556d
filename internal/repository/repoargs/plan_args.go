package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePlan struct {
	AccountID int64
	Principal decimal.Decimal
	DailyRate decimal.Decimal
	StartAt   time.Time
	EndAt     time.Time
	Duration  int32
}

// AdvanceCredited guarded-апдейт счетчика начисленных периодов. Апдейт проходит только если
// текущее значение в базе равно FromPeriods — так гонка двух начислителей дает максимум
// одно начисление за период.
type AdvanceCredited struct {
	PlanID      int64
	FromPeriods int32
	ToPeriods   int32
}
