package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/metrics"
)

// Failure is the handoff from a failed fulfillment attempt. It lives only
// long enough to run the recovery chain and is never persisted.
type Failure struct {
	ChatID  int64
	OrderID string
	Reason  string
}

// Recovery runs the failure chain: buyer notification, optional marketplace
// refund, then the balance-triggered listing deactivation guard. A failure
// in one link never suppresses the next.
type Recovery interface {
	HandleFailure(ctx context.Context, f Failure)
}

type recoveryImpl struct {
	vendor      VendorGateway
	chat        Messenger
	refunder    Refunder
	deactivator Deactivator
	cfg         config.FulfillmentConfig
	minBalance  decimal.Decimal
}

func NewRecovery(
	vendor VendorGateway,
	chat Messenger,
	refunder Refunder,
	deactivator Deactivator,
	cfg config.Config,
) Recovery {
	return &recoveryImpl{
		vendor:      vendor,
		chat:        chat,
		refunder:    refunder,
		deactivator: deactivator,
		cfg:         cfg.Fulfillment,
		minBalance:  cfg.Vendor.MinBalance,
	}
}

func (r *recoveryImpl) HandleFailure(ctx context.Context, f Failure) {
	r.notifyAndRefund(ctx, f)
	r.balanceGuard(ctx)
}

func (r *recoveryImpl) notifyAndRefund(ctx context.Context, f Failure) {
	r.notify(ctx, f.ChatID, msgFailure(f.Reason, r.cfg.AutoRefund))

	if !r.cfg.AutoRefund {
		slog.Warn("auto refund disabled, manual refund required", "order_id", f.OrderID)
		return
	}

	if err := r.refunder.Refund(ctx, f.OrderID); err != nil {
		// Refund failure is logged distinctly from the failure that got
		// us here.
		slog.Error("refund failed", "order_id", f.OrderID, "error", err.Error())
		metrics.RefundIssued(false)
		r.notify(ctx, f.ChatID, msgRefundFailed)
		return
	}
	slog.Warn("refund issued", "order_id", f.OrderID)
	metrics.RefundIssued(true)
	r.notify(ctx, f.ChatID, msgRefunded)
}

func (r *recoveryImpl) balanceGuard(ctx context.Context) {
	balance, err := r.vendor.Balance(ctx)
	if err != nil {
		// Deactivation is a best-effort safety action; with the balance
		// unknown we skip it rather than guess.
		slog.Warn("vendor balance unknown, skipping deactivation check", "error", err.Error())
		return
	}
	bal, _ := balance.Float64()
	metrics.VendorBalance(bal)
	slog.Info("vendor balance", "balance", balance.String())

	if balance.GreaterThanOrEqual(r.minBalance) {
		return
	}
	slog.Warn("vendor balance below threshold",
		"balance", balance.String(), "threshold", r.minBalance.String())

	if !r.cfg.AutoDeactivate {
		slog.Warn("auto deactivate disabled, deactivate listings manually")
		return
	}
	result := r.deactivator.Deactivate(ctx, r.cfg.DeactivationCategory())
	slog.Warn("auto-deactivated listings",
		"count", result.Deactivated, "category_id", r.cfg.DeactivationCategory())
}

func (r *recoveryImpl) notify(ctx context.Context, chatID int64, text string) {
	if err := r.chat.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("failed to send chat message", "chat_id", chatID, "error", err.Error())
	}
}
