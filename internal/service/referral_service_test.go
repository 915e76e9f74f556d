package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
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

type ReferralServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockAccountRepo *mocks.MockAccountRepository
	mockPlanRepo    *mocks.MockPlanRepository
	mockCache       *mocks.MockSummaryCache
	service         *ReferralService
}

func TestReferralServiceSuite(t *testing.T) {
	suite.Run(t, new(ReferralServiceTestSuite))
}

func (s *ReferralServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockPlanRepo = mocks.NewMockPlanRepository(s.mockCtrl)
	s.mockCache = mocks.NewMockSummaryCache(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PlanRepoName)).
		Return(s.mockPlanRepo, nil).AnyTimes()

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	var err error
	s.service, err = NewReferralService(
		s.mockUOW,
		s.mockCache,
		logrus.NewEntry(silent),
		decimal.NewFromFloat(0.01),
	)
	s.Require().NoError(err)
}

func (s *ReferralServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReferralServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
}

func (s *ReferralServiceTestSuite) TestBind() {
	identity := gofakeit.UUID()
	inviter := &domain.Account{
		Identity:     "inviter",
		ReferralCode: "c0ffee",
		SponsorChain: []string{"grand", "great-grand"},
	}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity}, nil)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "c0ffee").Return(inviter, nil)

	s.expectDo()
	s.mockAccountRepo.EXPECT().BindReferral(gomock.Any(), repoargs.BindReferral{
		Identity:     identity,
		ReferredBy:   "inviter",
		SponsorChain: []string{"inviter", "grand", "great-grand"},
	}).Return(nil)
	s.mockAccountRepo.EXPECT().IncrementDirectRefs(gomock.Any(), "inviter").Return(nil)

	s.Require().NoError(s.service.Bind(s.T().Context(), identity, "c0ffee"))
}

func (s *ReferralServiceTestSuite) TestBind_ChainCappedAtLimit() {
	identity := gofakeit.UUID()
	longChain := make([]string, domain.SponsorChainLimit+3)
	for i := range longChain {
		longChain[i] = gofakeit.UUID()
	}
	inviter := &domain.Account{Identity: "inviter", SponsorChain: longChain}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity}, nil)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "code").Return(inviter, nil)

	s.expectDo()
	s.mockAccountRepo.EXPECT().BindReferral(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.BindReferral) error {
			s.Len(args.SponsorChain, domain.SponsorChainLimit)
			s.Equal("inviter", args.SponsorChain[0])
			return nil
		})
	s.mockAccountRepo.EXPECT().IncrementDirectRefs(gomock.Any(), "inviter").Return(nil)

	s.Require().NoError(s.service.Bind(s.T().Context(), identity, "code"))
}

func (s *ReferralServiceTestSuite) TestBind_AlreadyBound() {
	identity := gofakeit.UUID()

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity, ReferredBy: "someone"}, nil)

	err := s.service.Bind(s.T().Context(), identity, "code")
	s.Require().ErrorIs(err, domain.ErrReferralBound)
}

func (s *ReferralServiceTestSuite) TestBind_Self() {
	identity := gofakeit.UUID()

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity}, nil)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "owncode").
		Return(&domain.Account{Identity: identity}, nil)

	err := s.service.Bind(s.T().Context(), identity, "owncode")
	s.Require().ErrorIs(err, domain.ErrSelfReferral)
}

func (s *ReferralServiceTestSuite) TestBind_InviterByIdentityFallback() {
	identity := gofakeit.UUID()
	inviter := &domain.Account{Identity: "inviter"}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(&domain.Account{Identity: identity}, nil)
	s.mockAccountRepo.EXPECT().FindByReferralCode(gomock.Any(), "inviter").
		Return(nil, domain.ErrRecordNotFound)
	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), "inviter").Return(inviter, nil)

	s.expectDo()
	s.mockAccountRepo.EXPECT().BindReferral(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().IncrementDirectRefs(gomock.Any(), "inviter").Return(nil)

	s.Require().NoError(s.service.Bind(s.T().Context(), identity, "inviter"))
}

func (s *ReferralServiceTestSuite) TestPayout_AllLevels() {
	purchaser := gofakeit.UUID()
	account := &domain.Account{
		Identity:     purchaser,
		SponsorChain: []string{"s1", "s2", "s3"},
	}
	bonus := decimal.NewFromInt(5) // 1% от 500

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), purchaser).Return(account, nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s1", decimalEq{bonus}).Return(nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s2", decimalEq{bonus}).Return(nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s3", decimalEq{bonus}).Return(nil)

	s.service.Payout(s.T().Context(), purchaser, decimal.NewFromInt(500))
}

// TestPayout_FailureOnOneLevelContinues неудача на одном уровне не мешает остальным.
func (s *ReferralServiceTestSuite) TestPayout_FailureOnOneLevelContinues() {
	purchaser := gofakeit.UUID()
	account := &domain.Account{
		Identity:     purchaser,
		SponsorChain: []string{"s1", "s2", "s3"},
	}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), purchaser).Return(account, nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s1", gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s2", gomock.Any()).
		Return(errors.New("credit failed"))
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s3", gomock.Any()).Return(nil)

	s.service.Payout(s.T().Context(), purchaser, decimal.NewFromInt(100))
}

// TestPayout_SkipsPurchaserInChain покупатель в собственной цепочке не получает бонус.
func (s *ReferralServiceTestSuite) TestPayout_SkipsPurchaserInChain() {
	purchaser := gofakeit.UUID()
	account := &domain.Account{
		Identity:     purchaser,
		SponsorChain: []string{"s1", purchaser, "s3"},
	}

	s.mockAccountRepo.EXPECT().FindByIdentity(gomock.Any(), purchaser).Return(account, nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s1", gomock.Any()).Return(nil)
	s.mockAccountRepo.EXPECT().CreditBonus(gomock.Any(), "s3", gomock.Any()).Return(nil)

	s.service.Payout(s.T().Context(), purchaser, decimal.NewFromInt(100))
}

func (s *ReferralServiceTestSuite) TestPayout_ZeroBonusSkipsLookup() {
	s.service.Payout(s.T().Context(), gofakeit.UUID(), decimal.NewFromFloat(0.01))
}

func (s *ReferralServiceTestSuite) TestSummary_CacheHit() {
	identity := gofakeit.UUID()
	cached := []domain.ReferralLevel{{Level: 1, Count: 2}}

	s.mockCache.EXPECT().GetSummary(gomock.Any(), identity).Return(cached, true)

	levels, err := s.service.Summary(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Equal(cached, levels)
}

func (s *ReferralServiceTestSuite) TestSummary_BuildsLevels() {
	identity := gofakeit.UUID()

	s.mockCache.EXPECT().GetSummary(gomock.Any(), identity).Return(nil, false)

	s.mockAccountRepo.EXPECT().DownlineIdentities(gomock.Any(), []string{identity}).
		Return([]string{"a", "b"}, nil)
	s.mockPlanRepo.EXPECT().SumPrincipalByIdentities(gomock.Any(), []string{"a", "b"}).
		Return(decimal.NewFromInt(300), nil)

	s.mockAccountRepo.EXPECT().DownlineIdentities(gomock.Any(), []string{"a", "b"}).
		Return([]string{"c"}, nil)
	s.mockPlanRepo.EXPECT().SumPrincipalByIdentities(gomock.Any(), []string{"c"}).
		Return(decimal.NewFromInt(100), nil)

	s.mockAccountRepo.EXPECT().DownlineIdentities(gomock.Any(), []string{"c"}).
		Return(nil, nil)

	s.mockCache.EXPECT().SetSummary(gomock.Any(), identity, gomock.Any(), summaryCacheTTL)

	levels, err := s.service.Summary(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Require().Len(levels, domain.SponsorChainLimit)

	s.Equal(int32(1), levels[0].Level)
	s.Equal(int64(2), levels[0].Count)
	s.True(levels[0].Volume.Equal(decimal.NewFromInt(300)))
	s.True(levels[0].Earnings.Equal(decimal.NewFromInt(3)))

	s.Equal(int32(2), levels[1].Level)
	s.Equal(int64(1), levels[1].Count)
	s.True(levels[1].Earnings.Equal(decimal.NewFromInt(1)))

	for i := 2; i < domain.SponsorChainLimit; i++ {
		s.Equal(int32(i+1), levels[i].Level)
		s.Zero(levels[i].Count)
		s.True(levels[i].Volume.IsZero())
		s.True(levels[i].Earnings.IsZero())
	}
}

// TestSummary_EmptyDownlineStillFifteenRows сводка без единого реферала — пятнадцать
// нулевых строк, без обхода пустых уровней.
func (s *ReferralServiceTestSuite) TestSummary_EmptyDownlineStillFifteenRows() {
	identity := gofakeit.UUID()

	s.mockCache.EXPECT().GetSummary(gomock.Any(), identity).Return(nil, false)
	s.mockAccountRepo.EXPECT().DownlineIdentities(gomock.Any(), []string{identity}).
		Return(nil, nil)
	s.mockCache.EXPECT().SetSummary(gomock.Any(), identity, gomock.Any(), summaryCacheTTL)

	levels, err := s.service.Summary(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Require().Len(levels, domain.SponsorChainLimit)
	for i, level := range levels {
		s.Equal(int32(i+1), level.Level)
		s.Zero(level.Count)
		s.True(level.Volume.IsZero())
		s.True(level.Earnings.IsZero())
	}
}
