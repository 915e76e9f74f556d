package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/qvest/internal/worker/mocks"
)

type ReconcilerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockWithdrawalReconciler
	reconciler  *Reconciler
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockWithdrawalReconciler(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.reconciler = NewReconciler(s.mockService, logger).
		SetInterval(10 * time.Millisecond).
		SetStaleAfter(time.Minute)
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReconcilerTestSuite) TestRun_CallsReconcileUntilStopped() {
	ctx, cancel := context.WithCancel(s.T().Context())

	done := make(chan struct{})
	var once sync.Once
	s.mockService.EXPECT().
		Reconcile(gomock.Any(), time.Minute, defaultReconcileLimit).
		DoAndReturn(func(_ context.Context, _ time.Duration, _ uint) (int, error) {
			once.Do(func() {
				cancel()
				close(done)
			})
			return 1, nil
		}).AnyTimes()

	go s.reconciler.Run(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("reconcile was never called")
	}
}

// TestRun_ErrorDoesNotStopLoop ошибка одной итерации не останавливает цикл.
func (s *ReconcilerTestSuite) TestRun_ErrorDoesNotStopLoop() {
	ctx, cancel := context.WithCancel(s.T().Context())

	done := make(chan struct{})
	var calls int
	var once sync.Once
	s.mockService.EXPECT().
		Reconcile(gomock.Any(), time.Minute, defaultReconcileLimit).
		DoAndReturn(func(_ context.Context, _ time.Duration, _ uint) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("transfer service down")
			}
			once.Do(func() {
				cancel()
				close(done)
			})
			return 0, nil
		}).AnyTimes()

	go s.reconciler.Run(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("reconcile loop stopped after an error")
	}
}
