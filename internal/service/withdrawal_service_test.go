package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/internal/service/mocks"
	"github.com/fsdevblog/qvest/pkg/uow"
	uowmocks "github.com/fsdevblog/qvest/pkg/uow/mocks"
)

const testPayoutAddress = "0x8ba1f109551bd432803012645ac136ddd64dba72"

type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockAccountRepo    *mocks.MockAccountRepository
	mockWithdrawalRepo *mocks.MockWithdrawalRepository
	mockDepositRepo    *mocks.MockDepositRepository
	mockTransfer       *mocks.MockTransferClient
	service            *WithdrawalService
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}

func (s *WithdrawalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockWithdrawalRepo = mocks.NewMockWithdrawalRepository(s.mockCtrl)
	s.mockDepositRepo = mocks.NewMockDepositRepository(s.mockCtrl)
	s.mockTransfer = mocks.NewMockTransferClient(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	ledger, ledgerErr := NewLedgerService(s.mockUOW, decimal.NewFromFloat(0.03))
	s.Require().NoError(ledgerErr)

	var err error
	s.service, err = NewWithdrawalService(
		s.mockUOW,
		ledger,
		s.mockTransfer,
		logrus.NewEntry(silent),
		decimal.NewFromInt(5),
	)
	s.Require().NoError(err)
}

func (s *WithdrawalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WithdrawalServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WithdrawalRepoName)).
		Return(s.mockWithdrawalRepo, nil).AnyTimes()
}

// expectReserve настраивает фазу резервирования: блокировку, списание и заявку queued.
func (s *WithdrawalServiceTestSuite) expectReserve(identity string, amount decimal.Decimal) *domain.Withdrawal {
	account := &domain.Account{
		Identity:      identity,
		PlanEarnings:  decimal.NewFromInt(30),
		BonusEarnings: decimal.NewFromInt(70),
	}
	created := &domain.Withdrawal{
		ID:             21,
		Identity:       identity,
		Amount:         amount,
		Destination:    common.HexToAddress(testPayoutAddress).Hex(),
		Status:         domain.WithdrawalStatusQueued,
		FromPlan:       decimal.Min(account.PlanEarnings, amount),
		FromBonus:      amount.Sub(decimal.Min(account.PlanEarnings, amount)),
		IdempotencyKey: gofakeit.UUID(),
	}

	s.expectDo()
	s.mockAccountRepo.EXPECT().LockByIdentity(gomock.Any(), identity).Return(account, nil)
	s.mockAccountRepo.EXPECT().ApplyEarningsDelta(gomock.Any(), gomock.Any()).Return(nil)
	s.mockWithdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error) {
			s.Equal(identity, args.Identity)
			s.True(args.Amount.Equal(amount))
			s.Equal(common.HexToAddress(testPayoutAddress).Hex(), args.Destination)
			s.NotEmpty(args.IdempotencyKey)
			s.True(args.FromPlan.Add(args.FromBonus).Equal(amount))
			return created, nil
		})
	return created
}

func (s *WithdrawalServiceTestSuite) TestRequest_Sent() {
	identity := gofakeit.UUID()
	amount := decimal.NewFromInt(50)
	created := s.expectReserve(identity, amount)

	s.mockTransfer.EXPECT().
		Send(gomock.Any(), created.Destination, decimalEq{amount}, created.IdempotencyKey).
		Return("0xabc123", nil)
	s.mockWithdrawalRepo.EXPECT().MarkSent(gomock.Any(), created.ID, "0xabc123").Return(nil)

	got, err := s.service.Request(s.T().Context(), identity, amount, testPayoutAddress)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatusSent, got.Status)
	s.Equal("0xabc123", got.TxRef)
}

// TestRequest_PermanentFailureRefundsExactSplit однозначный отказ возвращает списание
// ровно в исходные пулы и помечает заявку failed.
func (s *WithdrawalServiceTestSuite) TestRequest_PermanentFailureRefundsExactSplit() {
	identity := gofakeit.UUID()
	amount := decimal.NewFromInt(50)
	created := s.expectReserve(identity, amount)

	s.mockTransfer.EXPECT().
		Send(gomock.Any(), created.Destination, gomock.Any(), created.IdempotencyKey).
		Return("", &domain.TransferFailedError{Reason: "destination rejected", Transient: false})

	// вторая транзакция: возврат + failed
	s.expectDo()
	s.mockAccountRepo.EXPECT().ApplyEarningsDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delta repoargs.EarningsDelta) error {
			s.True(delta.PlanDelta.Equal(created.FromPlan))
			s.True(delta.BonusDelta.Equal(created.FromBonus))
			return nil
		})
	s.mockWithdrawalRepo.EXPECT().
		MarkFailed(gomock.Any(), created.ID, "destination rejected").
		Return(nil)

	got, err := s.service.Request(s.T().Context(), identity, amount, testPayoutAddress)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatusFailed, got.Status)
	s.Equal("destination rejected", got.FailReason)
}

// TestRequest_TransientFailureStaysQueued неоднозначный исход: деньги не возвращаются,
// заявка остается queued до Reconcile.
func (s *WithdrawalServiceTestSuite) TestRequest_TransientFailureStaysQueued() {
	identity := gofakeit.UUID()
	amount := decimal.NewFromInt(50)
	created := s.expectReserve(identity, amount)

	s.mockTransfer.EXPECT().
		Send(gomock.Any(), created.Destination, gomock.Any(), created.IdempotencyKey).
		Return("", &domain.TransferFailedError{Reason: "gateway timeout", Transient: true})
	// MarkFailed и возврат не ожидаются

	got, err := s.service.Request(s.T().Context(), identity, amount, testPayoutAddress)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatusQueued, got.Status)
}

func (s *WithdrawalServiceTestSuite) TestRequest_BelowMinimum() {
	var belowMin *domain.BelowMinimumError

	_, err := s.service.Request(s.T().Context(), gofakeit.UUID(), decimal.NewFromFloat(4.99), testPayoutAddress)
	s.Require().ErrorAs(err, &belowMin)
}

func (s *WithdrawalServiceTestSuite) TestRequest_NotEnoughEarnings() {
	identity := gofakeit.UUID()
	account := &domain.Account{
		Identity:      identity,
		PlanEarnings:  decimal.NewFromInt(1),
		BonusEarnings: decimal.NewFromInt(2),
	}

	s.expectDo()
	s.mockAccountRepo.EXPECT().LockByIdentity(gomock.Any(), identity).Return(account, nil)

	_, err := s.service.Request(s.T().Context(), identity, decimal.NewFromInt(50), testPayoutAddress)
	s.Require().ErrorIs(err, domain.ErrNotEnoughEarnings)
}

func (s *WithdrawalServiceTestSuite) TestRequest_FallsBackToStoredAddress() {
	identity := gofakeit.UUID()
	amount := decimal.NewFromInt(50)

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity, PayoutAddress: testPayoutAddress}, nil)

	created := s.expectReserve(identity, amount)
	s.mockTransfer.EXPECT().
		Send(gomock.Any(), created.Destination, gomock.Any(), created.IdempotencyKey).
		Return("0xdef", nil)
	s.mockWithdrawalRepo.EXPECT().MarkSent(gomock.Any(), created.ID, "0xdef").Return(nil)

	got, err := s.service.Request(s.T().Context(), identity, amount, "")
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalStatusSent, got.Status)
}

func (s *WithdrawalServiceTestSuite) TestRequest_NoAddressAnywhere() {
	identity := gofakeit.UUID()

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity}, nil)

	_, err := s.service.Request(s.T().Context(), identity, decimal.NewFromInt(50), "")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *WithdrawalServiceTestSuite) TestSetPayoutAddress() {
	identity := gofakeit.UUID()

	s.mockAccountRepo.EXPECT().
		SetPayoutAddress(gomock.Any(), identity, common.HexToAddress(testPayoutAddress).Hex()).
		Return(nil)

	s.Require().NoError(s.service.SetPayoutAddress(s.T().Context(), identity, testPayoutAddress))
}

func (s *WithdrawalServiceTestSuite) TestSetPayoutAddress_Invalid() {
	err := s.service.SetPayoutAddress(s.T().Context(), gofakeit.UUID(), "not-an-address")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *WithdrawalServiceTestSuite) staleWithdrawal() domain.Withdrawal {
	return domain.Withdrawal{
		ID:             33,
		Identity:       gofakeit.UUID(),
		Amount:         decimal.NewFromInt(40),
		Destination:    common.HexToAddress(testPayoutAddress).Hex(),
		Status:         domain.WithdrawalStatusQueued,
		FromPlan:       decimal.NewFromInt(40),
		FromBonus:      decimal.Zero,
		IdempotencyKey: gofakeit.UUID(),
	}
}

// TestReconcile_TransferWentThrough сервис переводов знает ключ: заявка дошивается в sent
// без повторной отправки.
func (s *WithdrawalServiceTestSuite) TestReconcile_TransferWentThrough() {
	stale := s.staleWithdrawal()

	s.mockWithdrawalRepo.EXPECT().GetStaleQueued(gomock.Any(), gomock.Any(), uint(50)).
		Return([]domain.Withdrawal{stale}, nil)
	s.mockTransfer.EXPECT().Status(gomock.Any(), stale.IdempotencyKey).
		Return(domain.TransferStateSent, "0xfeed", nil)
	s.mockWithdrawalRepo.EXPECT().MarkSent(gomock.Any(), stale.ID, "0xfeed").Return(nil)

	processed, err := s.service.Reconcile(s.T().Context(), 5*time.Minute, 50)
	s.Require().NoError(err)
	s.Equal(1, processed)
}

func (s *WithdrawalServiceTestSuite) TestReconcile_TransferFailed() {
	stale := s.staleWithdrawal()

	s.mockWithdrawalRepo.EXPECT().GetStaleQueued(gomock.Any(), gomock.Any(), uint(50)).
		Return([]domain.Withdrawal{stale}, nil)
	s.mockTransfer.EXPECT().Status(gomock.Any(), stale.IdempotencyKey).
		Return(domain.TransferStateFailed, "", nil)

	s.expectDo()
	s.mockAccountRepo.EXPECT().ApplyEarningsDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delta repoargs.EarningsDelta) error {
			s.True(delta.PlanDelta.Equal(stale.FromPlan))
			s.True(delta.BonusDelta.Equal(stale.FromBonus))
			return nil
		})
	s.mockWithdrawalRepo.EXPECT().MarkFailed(gomock.Any(), stale.ID, gomock.Any()).Return(nil)

	processed, err := s.service.Reconcile(s.T().Context(), 5*time.Minute, 50)
	s.Require().NoError(err)
	s.Equal(1, processed)
}

// TestReconcile_UnknownResends о переводе не знают: переотправка тем же ключом
// идемпотентности, двойного списания нет.
func (s *WithdrawalServiceTestSuite) TestReconcile_UnknownResends() {
	stale := s.staleWithdrawal()

	s.mockWithdrawalRepo.EXPECT().GetStaleQueued(gomock.Any(), gomock.Any(), uint(50)).
		Return([]domain.Withdrawal{stale}, nil)
	s.mockTransfer.EXPECT().Status(gomock.Any(), stale.IdempotencyKey).
		Return(domain.TransferStateUnknown, "", nil)
	s.mockTransfer.EXPECT().
		Send(gomock.Any(), stale.Destination, decimalEq{stale.Amount}, stale.IdempotencyKey).
		Return("0xbeef", nil)
	s.mockWithdrawalRepo.EXPECT().MarkSent(gomock.Any(), stale.ID, "0xbeef").Return(nil)

	processed, err := s.service.Reconcile(s.T().Context(), 5*time.Minute, 50)
	s.Require().NoError(err)
	s.Equal(1, processed)
}

func (s *WithdrawalServiceTestSuite) TestReconcile_NothingStale() {
	s.mockWithdrawalRepo.EXPECT().GetStaleQueued(gomock.Any(), gomock.Any(), uint(10)).
		Return(nil, nil)

	processed, err := s.service.Reconcile(s.T().Context(), time.Minute, 10)
	s.Require().NoError(err)
	s.Zero(processed)
}
