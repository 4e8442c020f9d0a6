package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/internal/core/ports/mocks"
	"recharge-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupExternalRouter(t *testing.T) (*gin.Engine, *mocks.MockOrderService, *gomock.Controller) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	orderSvc := mocks.NewMockOrderService(ctrl)

	h := NewExternalHandler(orderSvc)
	r := gin.New()
	r.POST("/api/v1/external/orders", h.CreateOrder)
	r.GET("/api/v1/external/orders/:business_order_id", h.QueryOrder)
	return r, orderSvc, ctrl
}

func TestExternalHandler_CreateOrder_ReturnsDesensitizedView(t *testing.T) {
	r, orderSvc, ctrl := setupExternalRouter(t)
	defer ctrl.Finish()

	payURL := "https://payhub.example/pay/PH-1"
	orderSvc.EXPECT().
		CreateExternalOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.ExternalOrderRequest) (*ports.OrderProjection, error) {
			assert.Equal(t, "m-001", req.MerchantID)
			assert.Equal(t, "bo-42", req.BusinessOrderID)
			return &ports.OrderProjection{
				ID:              "0d9aa9be-0000-4000-8000-000000000001",
				BusinessOrderID: "bo-42",
				Status:          domain.OrderStatusPending,
				Amount:          decimal.RequireFromString("10.00"),
				Currency:        "USD",
				SettledAmount:   decimal.RequireFromString("72.00"),
				SettledCurrency: "CNY",
				Channel:         "payhub",
				PayURL:          &payURL,
				ProductInfo:     &domain.PackageSnapshot{ID: "pkg_10", Label: "Starter 1100", TotalCredit: 1100},
				CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		})

	body := `{"merchant_id":"m-001","business_order_id":"bo-42","package_id":"pkg_10","timestamp":1700000000,"sign":"abc"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/external/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.RequestID)

	// The merchant view carries the channel, the frozen package snapshot and
	// timestamps, but never settlement internals or gateway identifiers.
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "bo-42", data["business_order_id"])
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, "payhub", data["channel"])
	assert.Equal(t, "2026-08-01T12:00:00Z", data["created_at"])
	product, ok := data["product"].(map[string]interface{})
	require.True(t, ok, "product snapshot missing from merchant view")
	assert.Equal(t, "pkg_10", product["id"])
	assert.NotContains(t, data, "settled_amount")
	assert.NotContains(t, data, "settled_currency")
	assert.NotContains(t, data, "merchant_id")
	assert.NotContains(t, data, "external_order_id")
	assert.NotContains(t, data, "callback_url")
}

func TestExternalHandler_CreateOrder_MissingFieldsRejected(t *testing.T) {
	r, _, ctrl := setupExternalRouter(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/external/orders", strings.NewReader(`{"merchant_id":"m-001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExternalHandler_CreateOrder_DuplicateSurfacesConflict(t *testing.T) {
	r, orderSvc, ctrl := setupExternalRouter(t)
	defer ctrl.Finish()

	orderSvc.EXPECT().
		CreateExternalOrder(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrDuplicateOrder("bo-42"))

	body := `{"merchant_id":"m-001","business_order_id":"bo-42","package_id":"pkg_10","timestamp":1700000000,"sign":"abc"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/external/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ORD_002")
}

func TestExternalHandler_QueryOrder_Success(t *testing.T) {
	r, orderSvc, ctrl := setupExternalRouter(t)
	defer ctrl.Finish()

	paidAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	orderSvc.EXPECT().
		QueryExternalOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.ExternalQueryRequest) (*ports.ExternalQueryResult, error) {
			assert.Equal(t, "m-001", req.MerchantID)
			assert.Equal(t, "bo-42", req.BusinessOrderID)
			assert.Equal(t, int64(1700000000), req.Timestamp)
			return &ports.ExternalQueryResult{
				Status:      ports.ExternalStatusSuccess,
				ProductInfo: &domain.PackageSnapshot{ID: "pkg_10", Label: "Starter 1100", TotalCredit: 1100},
				PaidAt:      &paidAt,
			}, nil
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/external/orders/bo-42?merchant_id=m-001&timestamp=1700000000&sign=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success"`)
	assert.Contains(t, w.Body.String(), "pkg_10")
}

func TestExternalHandler_QueryOrder_BadTimestamp(t *testing.T) {
	r, _, ctrl := setupExternalRouter(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/external/orders/bo-42?merchant_id=m-001&timestamp=soon&sign=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
