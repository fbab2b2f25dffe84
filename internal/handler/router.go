package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"applecard-bot/internal/handler/middleware"
	"applecard-bot/internal/handler/ops"
)

// NewRouter wires the ops surface. The bot has no inbound business API;
// everything here is for operators and scrapers.
func NewRouter(engine *gin.Engine, statusHandler *ops.StatusHandler, logger *slog.Logger) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logging(logger))

	engine.GET("/health", statusHandler.Health)
	engine.GET("/status", statusHandler.Status)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
