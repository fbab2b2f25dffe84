package funpay

import (
	"context"
	"log/slog"
	"time"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/usecase"
)

// Runner drives the single logical stream of marketplace events. Each
// order is processed to a terminal outcome before the next event is
// considered; the workflow itself never runs concurrently.
type Runner struct {
	client     *Client
	workflow   usecase.Fulfillment
	categoryID int64
	interval   time.Duration
}

func NewRunner(client *Client, workflow usecase.Fulfillment, cfg config.Config) *Runner {
	return &Runner{
		client:     client,
		workflow:   workflow,
		categoryID: cfg.Fulfillment.CategoryID,
		interval:   cfg.Funpay.PollInterval,
	}
}

// Run polls until the context is cancelled. Poll failures are logged and
// the loop keeps going; only cancellation stops it.
func (r *Runner) Run(ctx context.Context) error {
	tag := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}

		batch, err := r.client.Events(ctx, tag)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("event poll failed", "error", err.Error())
			continue
		}
		tag = batch.Tag

		for _, event := range batch.Events {
			r.dispatch(ctx, event)
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, event Event) {
	switch event.Type {
	case EventNewOrder:
		r.handleNewOrder(ctx, event.OrderID)
	case EventNewMessage:
		slog.Info("message received", "chat_id", event.ChatID, "author_id", event.AuthorID, "text", event.Text)
	default:
		slog.Debug("ignoring event", "type", event.Type)
	}
}

func (r *Runner) handleNewOrder(ctx context.Context, orderID string) {
	order, err := r.client.GetOrder(ctx, orderID)
	if err != nil {
		slog.Error("failed to fetch order", "order_id", orderID, "error", err.Error())
		return
	}
	if order.SubcategoryID != r.categoryID {
		slog.Info("skipping order outside target category",
			"order_id", order.ID, "subcategory_id", order.SubcategoryID, "category_id", r.categoryID)
		return
	}

	slog.Info("new order", "order_id", order.ID, "buyer_id", order.BuyerID, "title", order.Title)
	outcome := r.workflow.Handle(ctx, *order)
	slog.Info("order processed", "order_id", order.ID, "outcome", string(outcome))
}
