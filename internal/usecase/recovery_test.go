//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/errs"
	"applecard-bot/internal/usecase"
	usecasemock "applecard-bot/tests/mock/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecoveryTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockVendor      *usecasemock.MockVendorGateway
	mockChat        *usecasemock.MockMessenger
	mockRefunder    *usecasemock.MockRefunder
	mockDeactivator *usecasemock.MockDeactivator
}

func (s *RecoveryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockVendor = usecasemock.NewMockVendorGateway(s.mockCtrl)
	s.mockChat = usecasemock.NewMockMessenger(s.mockCtrl)
	s.mockRefunder = usecasemock.NewMockRefunder(s.mockCtrl)
	s.mockDeactivator = usecasemock.NewMockDeactivator(s.mockCtrl)
}

func (s *RecoveryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecoverySuite(t *testing.T) {
	suite.Run(t, new(RecoveryTestSuite))
}

func (s *RecoveryTestSuite) newRecovery(mutate func(*config.Config)) usecase.Recovery {
	cfg := config.NewTestConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return usecase.NewRecovery(s.mockVendor, s.mockChat, s.mockRefunder, s.mockDeactivator, cfg)
}

func (s *RecoveryTestSuite) failure() usecase.Failure {
	return usecase.Failure{ChatID: 77001, OrderID: "ABCDEF12", Reason: "vendor api error: status 500"}
}

func (s *RecoveryTestSuite) TestRefundThenDeactivateBelowThreshold() {
	recovery := s.newRecovery(nil) // threshold 5, toggles on, category 1316

	var texts []string
	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), int64(77001), gomock.Any()).
		Do(func(_ context.Context, _ int64, text string) { texts = append(texts, text) }).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().
		Refund(gomock.Any(), "ABCDEF12").
		Return(nil).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.NewFromFloat(3.0), nil).Times(1)
	s.mockDeactivator.EXPECT().
		Deactivate(gomock.Any(), int64(1316)).
		Return(usecase.DeactivationResult{Deactivated: 2}).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())

	s.Require().Len(texts, 2)
	s.Contains(texts[0], "Оформляю возврат средств")
	s.Contains(texts[0], "status 500")
	s.Contains(texts[1], "Средства возвращены")
}

func (s *RecoveryTestSuite) TestDedicatedDeactivationCategory() {
	recovery := s.newRecovery(func(cfg *config.Config) {
		cfg.Fulfillment.DeactivateCategoryID = 999
	})

	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.Zero, nil).Times(1)
	s.mockDeactivator.EXPECT().
		Deactivate(gomock.Any(), int64(999)).
		Return(usecase.DeactivationResult{}).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())
}

func (s *RecoveryTestSuite) TestNoDeactivationAboveThreshold() {
	recovery := s.newRecovery(nil)

	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.NewFromFloat(12.5), nil).Times(1)
	// deactivator mock has no expectations: any call would fail the test

	recovery.HandleFailure(context.Background(), s.failure())
}

func (s *RecoveryTestSuite) TestRefundFailureNotifiesManualIntervention() {
	recovery := s.newRecovery(nil)

	var texts []string
	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ int64, text string) { texts = append(texts, text) }).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().
		Refund(gomock.Any(), "ABCDEF12").
		Return(errs.New("refund rejected")).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.NewFromInt(100), nil).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())

	s.Require().Len(texts, 2)
	s.Contains(texts[1], "Свяжитесь с админом")
}

func (s *RecoveryTestSuite) TestAutoRefundDisabled() {
	recovery := s.newRecovery(func(cfg *config.Config) {
		cfg.Fulfillment.AutoRefund = false
	})

	var sent string
	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), int64(77001), gomock.Any()).
		Do(func(_ context.Context, _ int64, text string) { sent = text }).
		Return(nil).Times(1)
	// refunder mock has no expectations: no refund call may happen
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.NewFromInt(100), nil).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())

	s.Contains(sent, "Авто-возврат выключен")
}

func (s *RecoveryTestSuite) TestBalanceUnknownSkipsDeactivation() {
	recovery := s.newRecovery(nil)

	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.Zero, errs.Mark(errs.New("connection refused"), errs.ErrNetwork)).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())
}

func (s *RecoveryTestSuite) TestAutoDeactivateDisabled() {
	recovery := s.newRecovery(func(cfg *config.Config) {
		cfg.Fulfillment.AutoDeactivate = false
	})

	s.mockChat.EXPECT().
		SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)
	s.mockRefunder.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.mockVendor.EXPECT().
		Balance(gomock.Any()).
		Return(decimal.NewFromFloat(1.0), nil).Times(1)

	recovery.HandleFailure(context.Background(), s.failure())
}
