package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/logger"
	"github.com/fsdevblog/qvest/internal/service"
	"github.com/fsdevblog/qvest/internal/transport/api/middlewares"
	"github.com/fsdevblog/qvest/internal/transport/api/mocks"
	"github.com/fsdevblog/qvest/internal/transport/api/testutils"
)

const testInternalToken = "rail-shared-secret"

type DepositHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockAllocator *mocks.MockAllocatorServicer
	mockLedger    *mocks.MockLedgerServicer
}

func TestDepositHandlerSuite(t *testing.T) {
	suite.Run(t, new(DepositHandlerTestSuite))
}

func (s *DepositHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAllocator = mocks.NewMockAllocatorServicer(mockCtrl)
	s.mockLedger = mocks.NewMockLedgerServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		Ledger:        s.mockLedger,
		Allocator:     s.mockAllocator,
		InternalToken: testInternalToken,
	})
}

func (s *DepositHandlerTestSuite) TestAddress() {
	identity := "user-1"

	s.mockAllocator.EXPECT().Allocate(gomock.Any(), identity).
		Return(&domain.Allocation{Identity: identity, Address: "0xDE9"}, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + DepositAddressRoute,
	}, testutils.WithHeader(middlewares.IdentityHeader, identity))

	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var response DepositAddressResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Equal("0xDE9", response.Address)
}

func (s *DepositHandlerTestSuite) TestNotify() {
	s.mockLedger.EXPECT().
		CreditDeposit(gomock.Any(), "user-1", gomock.Any(), "tx-1").
		Return(&service.CreditDepositResult{
			Deposit: &domain.Deposit{Identity: "user-1", Amount: decimal.NewFromInt(100)},
		}, nil).Times(1)
	s.mockLedger.EXPECT().
		CreditDeposit(gomock.Any(), "user-1", gomock.Any(), "tx-dup").
		Return(&service.CreditDepositResult{
			Deposit:         &domain.Deposit{Identity: "user-1", Amount: decimal.NewFromInt(100)},
			AlreadyCredited: true,
		}, nil).Times(1)

	cases := []struct {
		name          string
		payload       string
		token         string
		wantStatus    int
		wantCredited  bool
		wantDuplicate bool
	}{
		{
			name:         "all ok",
			payload:      `{"identity": "user-1", "amount": 100, "externalRef": "tx-1"}`,
			token:        testInternalToken,
			wantStatus:   http.StatusOK,
			wantCredited: true,
		}, {
			name:          "duplicate ref",
			payload:       `{"identity": "user-1", "amount": 100, "externalRef": "tx-dup"}`,
			token:         testInternalToken,
			wantStatus:    http.StatusOK,
			wantDuplicate: true,
		}, {
			name:       "wrong token",
			payload:    `{"identity": "user-1", "amount": 100, "externalRef": "tx-2"}`,
			token:      "guessed",
			wantStatus: http.StatusForbidden,
		}, {
			name:       "no token",
			payload:    `{"identity": "user-1", "amount": 100, "externalRef": "tx-2"}`,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "missing identity",
			payload:    `{"amount": 100, "externalRef": "tx-3"}`,
			token:      testInternalToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing external ref",
			payload:    `{"identity": "user-1", "amount": 100}`,
			token:      testInternalToken,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + DepositsNotifyRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.token != "" {
				reqOpts = append(reqOpts, testutils.WithHeader(middlewares.InternalTokenHeader, t.token))
			}
			res := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Require().Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus != http.StatusOK {
				return
			}

			var response DepositNotifyResponse
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
			s.Equal(t.wantCredited, response.Credited)
			s.Equal(t.wantDuplicate, response.AlreadyCredited)
		})
	}
}
