// Package worker содержит фоновые циклы начисления и реконсиляции.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/qvest/internal/domain"
)

const (
	defaultSweepInterval       = time.Minute
	defaultSweepPageSize  uint = 200
	defaultSweepWorkers   uint = 10
	defaultServiceTimeout      = 10 * time.Second
)

// PlanCrediter сервисный контракт развертки начислений.
type PlanCrediter interface {
	ActiveAccounts(ctx context.Context, afterAccountID int64, limit uint) ([]domain.ActiveAccountRef, error)
	CreditDue(ctx context.Context, identity string) error
}

// Sweeper фоновая развертка начислений: периодически обходит все аккаунты с активными
// планами и доначисляет созревшие периоды. Начисление идемпотентно, поэтому развертка
// спокойно пересекается с ленивым начислением на чтении.
type Sweeper struct {
	svs      PlanCrediter
	l        *logrus.Entry
	interval time.Duration
	pageSize uint
	workers  uint
}

// NewSweeper создает развертку начислений.
func NewSweeper(svs PlanCrediter, l *logrus.Logger) *Sweeper {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "worker",
		"module":    "sweeper",
	})
	return &Sweeper{
		svs:      svs,
		l:        loggerEntry,
		interval: defaultSweepInterval,
		pageSize: defaultSweepPageSize,
		workers:  defaultSweepWorkers,
	}
}

// SetInterval устанавливает период между проходами развертки.
func (s *Sweeper) SetInterval(interval time.Duration) *Sweeper {
	s.interval = interval
	return s
}

// SetPageSize устанавливает размер страницы обхода аккаунтов.
func (s *Sweeper) SetPageSize(size uint) *Sweeper {
	s.pageSize = size
	return s
}

// SetWorkers устанавливает кол-во воркеров начисления.
func (s *Sweeper) SetWorkers(workers uint) *Sweeper {
	s.workers = workers
	return s
}

// Run запускает развертку в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. Каждые interval начинается полный проход: аккаунты с активными планами
//     читаются страницами по курсору account id.
//  2. Каждая страница раздается N воркерам, воркер вызывает начисление по identity.
//     Ошибки отдельных аккаунтов логируются и не прерывают проход.
func (s *Sweeper) Run(ctx context.Context) {
	s.l.WithFields(logrus.Fields{
		"interval": s.interval.String(),
		"pageSize": s.pageSize,
		"workers":  s.workers,
	}).Info("Starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep выполняет один полный проход по всем аккаунтам с активными планами.
func (s *Sweeper) sweep(ctx context.Context) {
	var cursor int64
	for {
		pageCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
		refs, refsErr := s.svs.ActiveAccounts(pageCtx, cursor, s.pageSize)
		cancel()

		if refsErr != nil {
			s.l.WithError(refsErr).Error("listing active accounts")
			return
		}
		if len(refs) == 0 {
			return
		}

		s.runWorkers(ctx, refs)
		cursor = refs[len(refs)-1].AccountID

		if ctx.Err() != nil {
			return
		}
	}
}

// runWorkers fan-out страницы аккаунтов на воркеров начисления.
func (s *Sweeper) runWorkers(ctx context.Context, refs []domain.ActiveAccountRef) {
	taskCh := make(chan domain.ActiveAccountRef, len(refs))
	for _, ref := range refs {
		taskCh <- ref
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(s.workers)) //nolint:gosec

	for i := range s.workers {
		go s.worker(ctx, wg, i+1, taskCh)
	}
	wg.Wait()
}

func (s *Sweeper) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint, taskCh <-chan domain.ActiveAccountRef) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
			creditErr := s.svs.CreditDue(reqCtx, task.Identity)
			cancel()

			if creditErr != nil {
				s.l.WithError(creditErr).WithFields(logrus.Fields{
					"worker":   workerID,
					"identity": task.Identity,
				}).Error("crediting due periods")
			}
		}
	}
}
