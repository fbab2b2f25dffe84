package ops

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/usecase"
)

// StatusHandler exposes the operational view of the bot: liveness and the
// effective fulfillment settings plus a live vendor balance read.
type StatusHandler struct {
	vendor usecase.VendorGateway
	cfg    config.Config
}

func NewStatusHandler(vendor usecase.VendorGateway, cfg config.Config) *StatusHandler {
	return &StatusHandler{vendor: vendor, cfg: cfg}
}

func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *StatusHandler) Status(c *gin.Context) {
	resp := gin.H{
		"category_id":            h.cfg.Fulfillment.CategoryID,
		"deactivate_category_id": h.cfg.Fulfillment.DeactivationCategory(),
		"auto_refund":            h.cfg.Fulfillment.AutoRefund,
		"auto_deactivate":        h.cfg.Fulfillment.AutoDeactivate,
		"min_balance":            h.cfg.Vendor.MinBalance.String(),
	}

	balance, err := h.vendor.Balance(c.Request.Context())
	if err != nil {
		resp["balance"] = "unknown"
	} else {
		resp["balance"] = balance.String()
	}
	c.JSON(http.StatusOK, resp)
}
