package usecase

import (
	"context"
	"log/slog"

	"applecard-bot/internal/pkg/metrics"
)

// DeactivationResult reports a best-effort batch: how many listings were
// flipped to inactive and which ones could not be, instead of swallowing
// per-listing errors silently.
type DeactivationResult struct {
	Deactivated int
	Failures    []LotFailure
}

type LotFailure struct {
	LotID int64
	Err   error
}

// Deactivator walks every listing in a category and pulls it from sale.
// Per-listing failures never abort the batch; a total enumeration failure
// yields an empty result, not an error.
type Deactivator interface {
	Deactivate(ctx context.Context, categoryID int64) DeactivationResult
}

type deactivatorImpl struct {
	lots LotStore
}

func NewDeactivator(lots LotStore) Deactivator {
	return &deactivatorImpl{lots: lots}
}

func (d *deactivatorImpl) Deactivate(ctx context.Context, categoryID int64) DeactivationResult {
	var result DeactivationResult

	lots, err := d.lots.LotsInCategory(ctx, categoryID)
	if err != nil {
		slog.Error("failed to enumerate lots", "category_id", categoryID, "error", err.Error())
		return result
	}

	for _, lot := range lots {
		fields, err := d.lots.LotFields(ctx, lot.ID)
		if err != nil {
			slog.Warn("failed to fetch lot fields, skipping", "lot_id", lot.ID, "error", err.Error())
			result.Failures = append(result.Failures, LotFailure{LotID: lot.ID, Err: err})
			continue
		}
		fields.Active = false
		if err := d.lots.SaveLot(ctx, fields); err != nil {
			slog.Error("failed to deactivate lot", "lot_id", lot.ID, "error", err.Error())
			result.Failures = append(result.Failures, LotFailure{LotID: lot.ID, Err: err})
			continue
		}
		slog.Info("lot deactivated", "lot_id", lot.ID)
		result.Deactivated++
	}

	metrics.LotsDeactivated(result.Deactivated)
	slog.Warn("deactivation batch finished",
		"category_id", categoryID, "deactivated", result.Deactivated, "failed", len(result.Failures))
	return result
}
