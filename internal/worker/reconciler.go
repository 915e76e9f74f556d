package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultReconcileInterval      = time.Minute
	defaultStaleAfter             = 5 * time.Minute
	defaultReconcileLimit    uint = 50
)

// WithdrawalReconciler сервисный контракт реконсиляции выводов.
type WithdrawalReconciler interface {
	Reconcile(ctx context.Context, olderThan time.Duration, limit uint) (int, error)
}

// Reconciler фоновый цикл доборки заявок на вывод, зависших между резервированием
// и финализацией (краш процесса, неоднозначный ответ сервиса переводов).
type Reconciler struct {
	svs        WithdrawalReconciler
	l          *logrus.Entry
	interval   time.Duration
	staleAfter time.Duration
	limit      uint
}

func NewReconciler(svs WithdrawalReconciler, l *logrus.Logger) *Reconciler {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "worker",
		"module":    "reconciler",
	})
	return &Reconciler{
		svs:        svs,
		l:          loggerEntry,
		interval:   defaultReconcileInterval,
		staleAfter: defaultStaleAfter,
		limit:      defaultReconcileLimit,
	}
}

// SetInterval устанавливает период между итерациями.
func (r *Reconciler) SetInterval(interval time.Duration) *Reconciler {
	r.interval = interval
	return r
}

// SetStaleAfter устанавливает возраст заявки в queued, после которого она считается зависшей.
func (r *Reconciler) SetStaleAfter(age time.Duration) *Reconciler {
	r.staleAfter = age
	return r
}

// Run запускает реконсиляцию в бесконечном цикле до отмены контекста.
func (r *Reconciler) Run(ctx context.Context) {
	r.l.WithFields(logrus.Fields{
		"interval":   r.interval.String(),
		"staleAfter": r.staleAfter.String(),
	}).Info("Starting")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
			processed, reconcileErr := r.svs.Reconcile(reqCtx, r.staleAfter, r.limit)
			cancel()

			if reconcileErr != nil {
				r.l.WithError(reconcileErr).Error("reconciling withdrawals")
				continue
			}
			if processed > 0 {
				r.l.WithField("processed", processed).Info("reconciled stale withdrawals")
			}
		}
	}
}
