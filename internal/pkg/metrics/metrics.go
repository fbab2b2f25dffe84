package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ordersProcessed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "applecard_orders_processed_total",
		Help: "Orders handled by the fulfillment workflow, by terminal outcome.",
	},
	[]string{"outcome"},
)

var refundsIssued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "applecard_refunds_total",
		Help: "Marketplace refund attempts, by result.",
	},
	[]string{"result"},
)

var lotsDeactivated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "applecard_lots_deactivated_total",
		Help: "Listings flipped to inactive by the balance guard.",
	},
)

var vendorBalance = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "applecard_vendor_balance",
		Help: "Last observed vendor account balance.",
	},
)

func OrderProcessed(outcome string) {
	ordersProcessed.WithLabelValues(outcome).Inc()
}

func RefundIssued(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	refundsIssued.WithLabelValues(result).Inc()
}

func LotsDeactivated(n int) {
	lotsDeactivated.Add(float64(n))
}

func VendorBalance(v float64) {
	vendorBalance.Set(v)
}
