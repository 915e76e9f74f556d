package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/internal/service/mocks"
	"github.com/fsdevblog/qvest/pkg/uow"
	uowmocks "github.com/fsdevblog/qvest/pkg/uow/mocks"
)

type AllocatorServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockAllocationRepo *mocks.MockAllocationRepository
	mockCounterRepo    *mocks.MockCounterRepository
	mockDeriver        *mocks.MockAddressDeriver
	service            *AllocatorService
}

func TestAllocatorServiceSuite(t *testing.T) {
	suite.Run(t, new(AllocatorServiceTestSuite))
}

func (s *AllocatorServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAllocationRepo = mocks.NewMockAllocationRepository(s.mockCtrl)
	s.mockCounterRepo = mocks.NewMockCounterRepository(s.mockCtrl)
	s.mockDeriver = mocks.NewMockAddressDeriver(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AllocationRepoName)).
		Return(s.mockAllocationRepo, nil).AnyTimes()

	var err error
	s.service, err = NewAllocatorService(s.mockUOW, s.mockDeriver, 0)
	s.Require().NoError(err)
}

func (s *AllocatorServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AllocatorServiceTestSuite) expectDoSerializable(txErr error) {
	s.mockUOW.EXPECT().DoSerializable(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			if err := fn(s.T().Context(), s.mockTX); err != nil {
				return err
			}
			return txErr
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.AllocationRepoName)).
		Return(s.mockAllocationRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CounterRepoName)).
		Return(s.mockCounterRepo, nil).AnyTimes()
}

func (s *AllocatorServiceTestSuite) TestAllocate_ExistingFastPath() {
	identity := gofakeit.UUID()
	existing := &domain.Allocation{ID: 1, Identity: identity, Address: "0xAAA"}

	s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).Return(existing, nil)

	got, err := s.service.Allocate(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Equal(existing, got)
}

func (s *AllocatorServiceTestSuite) TestAllocate_New() {
	identity := gofakeit.UUID()
	created := &domain.Allocation{ID: 2, Identity: identity, DerivationIndex: 7, Address: "0xBBB"}

	s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(nil, domain.ErrRecordNotFound).Times(2) // снаружи и внутри транзакции
	s.expectDoSerializable(nil)
	s.mockCounterRepo.EXPECT().ReserveNextIndex(gomock.Any(), CounterKey, int64(0)).
		Return(int64(7), nil)
	s.mockDeriver.EXPECT().Address(uint32(7)).Return("0xBBB", nil)
	s.mockAllocationRepo.EXPECT().Create(gomock.Any(), repoargs.CreateAllocation{
		Identity:        identity,
		DerivationIndex: 7,
		Address:         "0xBBB",
	}).Return(created, nil)

	got, err := s.service.Allocate(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Equal(created, got)
}

// TestAllocate_RaceLoserRereadsWinner гонка двух первых обращений: проигравший получает
// дубликат по identity и перечитывает запись победителя, его индекс остается сожженным.
func (s *AllocatorServiceTestSuite) TestAllocate_RaceLoserRereadsWinner() {
	identity := gofakeit.UUID()
	winner := &domain.Allocation{ID: 3, Identity: identity, DerivationIndex: 8, Address: "0xWIN"}

	gomock.InOrder(
		s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(nil, domain.ErrRecordNotFound),
		s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(nil, domain.ErrRecordNotFound),
		s.mockAllocationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateKey),
		s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(winner, nil),
	)
	s.expectDoSerializable(nil)
	s.mockCounterRepo.EXPECT().ReserveNextIndex(gomock.Any(), CounterKey, int64(0)).
		Return(int64(9), nil)
	s.mockDeriver.EXPECT().Address(uint32(9)).Return("0xLOSE", nil)

	got, err := s.service.Allocate(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Equal(winner, got)
}

// TestAllocate_InTxRecheckShortCircuits повторная проверка внутри транзакции нашла
// выдачу: счетчик не трогается.
func (s *AllocatorServiceTestSuite) TestAllocate_InTxRecheckShortCircuits() {
	identity := gofakeit.UUID()
	existing := &domain.Allocation{ID: 4, Identity: identity, Address: "0xCCC"}

	gomock.InOrder(
		s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(nil, domain.ErrRecordNotFound),
		s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
			Return(existing, nil),
	)
	s.expectDoSerializable(nil)

	got, err := s.service.Allocate(s.T().Context(), identity)
	s.Require().NoError(err)
	s.Equal(existing, got)
}

func (s *AllocatorServiceTestSuite) TestAllocate_IndexOutOfRange() {
	identity := gofakeit.UUID()

	s.mockAllocationRepo.EXPECT().FindByIdentity(gomock.Any(), identity).
		Return(nil, domain.ErrRecordNotFound).Times(2)
	s.expectDoSerializable(nil)
	s.mockCounterRepo.EXPECT().ReserveNextIndex(gomock.Any(), CounterKey, int64(0)).
		Return(int64(1)<<33, nil)

	_, err := s.service.Allocate(s.T().Context(), identity)
	s.Require().ErrorIs(err, domain.ErrUnknown)
}
