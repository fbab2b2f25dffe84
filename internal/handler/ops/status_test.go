//go:build unit

package ops_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"applecard-bot/internal/handler/ops"
	"applecard-bot/internal/pkg/config"
	"applecard-bot/internal/pkg/errs"
	usecasemock "applecard-bot/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *usecasemock.MockVendorGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	vendor := usecasemock.NewMockVendorGateway(ctrl)
	handler := ops.NewStatusHandler(vendor, config.NewTestConfig())

	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/status", handler.Status)
	return router, vendor
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus(t *testing.T) {
	t.Run("reports balance and toggles", func(t *testing.T) {
		router, vendor := setupRouter(t)
		vendor.EXPECT().
			Balance(gomock.Any()).
			Return(decimal.NewFromFloat(12.5), nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "12.5", body["balance"])
		assert.Equal(t, true, body["auto_refund"])
		assert.Equal(t, float64(1316), body["deactivate_category_id"])
	})

	t.Run("balance failure degrades to unknown", func(t *testing.T) {
		router, vendor := setupRouter(t)
		vendor.EXPECT().
			Balance(gomock.Any()).
			Return(decimal.Zero, errs.Mark(errs.New("down"), errs.ErrNetwork))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unknown", body["balance"])
	})
}
