package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/internal/service/mocks"
	"github.com/fsdevblog/qvest/pkg/uow"
	uowmocks "github.com/fsdevblog/qvest/pkg/uow/mocks"
)

// decimalEq матчер для decimal-аргументов: сравнивает значения, а не внутреннее
// представление (103 и 103.00 равны).
type decimalEq struct {
	want decimal.Decimal
}

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return "decimal equal to " + m.want.String()
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockDepositRepo *mocks.MockDepositRepository
	service         *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockDepositRepo = mocks.NewMockDepositRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()

	var err error
	s.service, err = NewLedgerService(s.mockUOW, decimal.NewFromFloat(0.03))
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTxRepos настраивает выдачу репозиториев из транзакции и прокидывание fn через UOW.
func (s *LedgerServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.DepositRepoName)).
		Return(s.mockDepositRepo, nil).AnyTimes()
}

func (s *LedgerServiceTestSuite) TestEnsure_Existing() {
	identity := gofakeit.UUID()
	account := &domain.Account{ID: 1, Identity: identity}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).Return(account, nil)

	got, err := s.service.Ensure(s.T().Context(), identity, "")
	s.Require().NoError(err)
	s.Equal(account, got)
}

func (s *LedgerServiceTestSuite) TestEnsure_CreatesOnFirstSight() {
	identity := gofakeit.UUID()
	username := gofakeit.Username()
	created := &domain.Account{ID: 7, Identity: identity, Username: username}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
			s.Equal(identity, args.Identity)
			s.Equal(username, args.Username)
			s.NotEmpty(args.ReferralCode)
			return created, nil
		})

	got, err := s.service.Ensure(s.T().Context(), identity, username)
	s.Require().NoError(err)
	s.Equal(created, got)
}

func (s *LedgerServiceTestSuite) TestEnsure_RaceLoserRereadsWinner() {
	identity := gofakeit.UUID()
	winner := &domain.Account{ID: 3, Identity: identity}

	gomock.InOrder(
		s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(nil, domain.ErrRecordNotFound),
		s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateKey),
		s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(winner, nil),
	)

	got, err := s.service.Ensure(s.T().Context(), identity, "")
	s.Require().NoError(err)
	s.Equal(winner, got)
}

func (s *LedgerServiceTestSuite) TestCreditDeposit() {
	identity := gofakeit.UUID()
	ref := gofakeit.UUID()
	amount := decimal.NewFromFloat(150.555)
	rounded := decimal.NewFromFloat(150.56)
	deposit := &domain.Deposit{ID: 1, Identity: identity, Amount: rounded, ExternalRef: ref}

	s.expectDo()
	s.mockDepositRepo.EXPECT().Create(gomock.Any(), repoargs.CreateDeposit{
		Identity:    identity,
		Amount:      rounded,
		ExternalRef: ref,
	}).Return(deposit, nil)
	s.mockAccountRepo.EXPECT().CreditFree(gomock.Any(), identity, decimalEq{rounded}).Return(nil)

	result, err := s.service.CreditDeposit(s.T().Context(), identity, amount, ref)
	s.Require().NoError(err)
	s.False(result.AlreadyCredited)
	s.Equal(deposit, result.Deposit)
}

func (s *LedgerServiceTestSuite) TestCreditDeposit_DuplicateRefDoesNotCredit() {
	identity := gofakeit.UUID()
	ref := gofakeit.UUID()
	amount := decimal.NewFromInt(100)
	existing := &domain.Deposit{ID: 1, Identity: identity, Amount: amount, ExternalRef: ref}

	s.expectDo()
	s.mockDepositRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	s.mockDepositRepo.EXPECT().FindByExternalRef(gomock.Any(), ref).Return(existing, nil)
	// CreditFree не ожидается: баланс не меняется

	result, err := s.service.CreditDeposit(s.T().Context(), identity, amount, ref)
	s.Require().NoError(err)
	s.True(result.AlreadyCredited)
	s.Equal(existing, result.Deposit)
}

func (s *LedgerServiceTestSuite) TestCreditDeposit_RejectsNonPositive() {
	_, err := s.service.CreditDeposit(s.T().Context(), gofakeit.UUID(), decimal.Zero, gofakeit.UUID())
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestConvertEarningsToFree() {
	identity := gofakeit.UUID()
	account := &domain.Account{
		Identity:      identity,
		PlanEarnings:  decimal.NewFromInt(70),
		BonusEarnings: decimal.NewFromInt(30),
	}

	s.expectDo()
	s.mockAccountRepo.EXPECT().LockByIdentity(gomock.Any(), identity).Return(account, nil)
	s.mockAccountRepo.EXPECT().ApplyEarningsDelta(gomock.Any(), repoargs.EarningsDelta{
		Identity:   identity,
		PlanDelta:  decimal.NewFromInt(-70),
		BonusDelta: decimal.NewFromInt(-30),
	}).Return(nil)
	// 100 + 3% надбавки
	s.mockAccountRepo.EXPECT().
		CreditFree(gomock.Any(), identity, decimalEq{decimal.NewFromInt(103)}).
		Return(nil)

	result, err := s.service.ConvertEarningsToFree(s.T().Context(), identity)
	s.Require().NoError(err)
	s.True(result.Transferred.Equal(decimal.NewFromInt(100)))
	s.True(result.Bonus.Equal(decimal.NewFromInt(3)))
	s.True(result.Credited.Equal(decimal.NewFromInt(103)))
}

func (s *LedgerServiceTestSuite) TestConvertEarningsToFree_NothingToConvert() {
	identity := gofakeit.UUID()
	account := &domain.Account{Identity: identity}

	s.expectDo()
	s.mockAccountRepo.EXPECT().LockByIdentity(gomock.Any(), identity).Return(account, nil)

	_, err := s.service.ConvertEarningsToFree(s.T().Context(), identity)
	s.Require().ErrorIs(err, domain.ErrNotEnoughEarnings)
}

func (s *LedgerServiceTestSuite) TestDebitEarningsTx_PlanFirstSplit() {
	identity := gofakeit.UUID()
	account := &domain.Account{
		Identity:      identity,
		PlanEarnings:  decimal.NewFromInt(10),
		BonusEarnings: decimal.NewFromInt(20),
	}

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil)
	s.mockAccountRepo.EXPECT().ApplyEarningsDelta(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, delta repoargs.EarningsDelta) error {
			s.Equal(identity, delta.Identity)
			s.True(delta.PlanDelta.Equal(decimal.NewFromInt(-10)))
			s.True(delta.BonusDelta.Equal(decimal.NewFromInt(-5)))
			return nil
		})

	split, err := s.service.DebitEarningsTx(s.T().Context(), s.mockTX, account, decimal.NewFromInt(15))
	s.Require().NoError(err)
	s.True(split.FromPlan.Equal(decimal.NewFromInt(10)))
	s.True(split.FromBonus.Equal(decimal.NewFromInt(5)))
	s.True(split.Total().Equal(decimal.NewFromInt(15)))
}

func (s *LedgerServiceTestSuite) TestDebitEarningsTx_NotEnough() {
	account := &domain.Account{
		Identity:      gofakeit.UUID(),
		PlanEarnings:  decimal.NewFromInt(1),
		BonusEarnings: decimal.NewFromInt(2),
	}

	_, err := s.service.DebitEarningsTx(s.T().Context(), s.mockTX, account, decimal.NewFromFloat(3.01))
	s.Require().ErrorIs(err, domain.ErrNotEnoughEarnings)
}
