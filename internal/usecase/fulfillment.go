package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"applecard-bot/internal/domain/card"
	"applecard-bot/internal/pkg/metrics"
)

// Outcome is the terminal state of one order-processing attempt.
type Outcome string

const (
	// OutcomeFulfilled — pins delivered to the buyer.
	OutcomeFulfilled Outcome = "fulfilled"
	// OutcomePending — vendor accepted payment but has no pins yet; the
	// buyer got a one-shot "still processing" notice. The workflow does
	// not re-poll on its own.
	OutcomePending Outcome = "pending"
	// OutcomeRejected — the description could not be mapped to a card;
	// nothing was bought, nothing to refund.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed — a vendor lifecycle step raised; handed to recovery.
	OutcomeFailed Outcome = "failed"
)

// Fulfillment runs one order to a terminal outcome:
// parse → resolve → create → pay → fetch → deliver.
type Fulfillment interface {
	Handle(ctx context.Context, order Order) Outcome
}

type fulfillmentImpl struct {
	vendor   VendorGateway
	chat     Messenger
	recovery Recovery
	newID    func() uuid.UUID
}

func NewFulfillment(vendor VendorGateway, chat Messenger, recovery Recovery) Fulfillment {
	return &fulfillmentImpl{
		vendor:   vendor,
		chat:     chat,
		recovery: recovery,
		newID:    uuid.New,
	}
}

func (f *fulfillmentImpl) Handle(ctx context.Context, order Order) Outcome {
	outcome := f.process(ctx, order)
	metrics.OrderProcessed(string(outcome))
	return outcome
}

func (f *fulfillmentImpl) process(ctx context.Context, order Order) Outcome {
	req, ok := card.Parse(order.Description)
	if !ok {
		slog.Error("no apple_card pattern in order description", "order_id", order.ID)
		f.notify(ctx, order.ChatID, msgNoNominal)
		return OutcomeRejected
	}

	serviceID, err := card.Resolve(req)
	if err != nil {
		// No vendor funds were spent; stop with a buyer-facing message
		// instead of the recovery chain.
		if errors.Is(err, card.ErrUnsupportedCurrency) {
			slog.Error("unsupported currency", "order_id", order.ID, "currency", req.Currency)
			f.notify(ctx, order.ChatID, msgUnsupportedCurrency(req.Currency.String()))
		} else {
			slog.Error("unsupported nominal", "order_id", order.ID, "nominal", req.Nominal, "currency", req.Currency)
			f.notify(ctx, order.ChatID, msgUnsupportedNominal(req.Nominal, req.Currency.String()))
		}
		return OutcomeRejected
	}

	// Fresh id per attempt; a failed attempt is never retried under the
	// same id.
	customID := f.newID()

	if err := f.vendor.CreateOrder(ctx, serviceID, 1.0, customID, ""); err != nil {
		return f.fail(ctx, order, err)
	}
	if _, err := f.vendor.PayOrder(ctx, customID); err != nil {
		return f.fail(ctx, order, err)
	}
	result, err := f.vendor.OrderInfo(ctx, customID)
	if err != nil {
		return f.fail(ctx, order, err)
	}

	if len(result.Pins) == 0 {
		slog.Warn("no pins in vendor response", "order_id", order.ID, "custom_id", customID)
		f.notify(ctx, order.ChatID, msgPending)
		return OutcomePending
	}

	f.notify(ctx, order.ChatID, msgDelivered(result.Pins, req.Nominal, req.Currency.String(), order.ID))
	slog.Info("pins delivered", "order_id", order.ID, "buyer_id", order.BuyerID, "count", len(result.Pins))
	return OutcomeFulfilled
}

func (f *fulfillmentImpl) fail(ctx context.Context, order Order, err error) Outcome {
	slog.Error("vendor order lifecycle failed", "order_id", order.ID, "error", err.Error())
	f.recovery.HandleFailure(ctx, Failure{
		ChatID:  order.ChatID,
		OrderID: order.ID,
		Reason:  err.Error(),
	})
	return OutcomeFailed
}

func (f *fulfillmentImpl) notify(ctx context.Context, chatID int64, text string) {
	if err := f.chat.SendMessage(ctx, chatID, text); err != nil {
		slog.Warn("failed to send chat message", "chat_id", chatID, "error", err.Error())
	}
}
