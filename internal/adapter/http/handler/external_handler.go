package handler

import (
	"strconv"
	"time"

	"recharge-gateway/internal/adapter/http/dto"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"
	"recharge-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExternalHandler handles the signed merchant API.
type ExternalHandler struct {
	orderSvc ports.OrderService
}

// NewExternalHandler creates a new ExternalHandler.
func NewExternalHandler(orderSvc ports.OrderService) *ExternalHandler {
	return &ExternalHandler{orderSvc: orderSvc}
}

// CreateOrder handles POST /api/v1/external/orders.
func (h *ExternalHandler) CreateOrder(c *gin.Context) {
	var req dto.ExternalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.orderSvc.CreateExternalOrder(c.Request.Context(), ports.ExternalOrderRequest{
		MerchantID:      req.MerchantID,
		BusinessOrderID: req.BusinessOrderID,
		PackageID:       req.PackageID,
		RetURL:          req.RetURL,
		ExtraData:       req.ExtraData,
		Timestamp:       req.Timestamp,
		Sign:            req.Sign,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toExternalOrderResponse(result))
}

// QueryOrder handles GET /api/v1/external/orders/:business_order_id.
// merchant_id, timestamp and sign travel as query parameters.
func (h *ExternalHandler) QueryOrder(c *gin.Context) {
	timestamp, err := strconv.ParseInt(c.Query("timestamp"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid timestamp"))
		return
	}

	result, err := h.orderSvc.QueryExternalOrder(c.Request.Context(), ports.ExternalQueryRequest{
		MerchantID:      c.Query("merchant_id"),
		BusinessOrderID: c.Param("business_order_id"),
		Timestamp:       timestamp,
		Sign:            c.Query("sign"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ExternalOrderStatusResponse{Status: string(result.Status)}
	if result.ProductInfo != nil {
		resp.Product = toProductResponse(result.ProductInfo)
	}
	if result.PaidAt != nil {
		s := result.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &s
	}
	response.OK(c, resp)
}

// toExternalOrderResponse converts a projection to the desensitized merchant
// view.
func toExternalOrderResponse(p *ports.OrderProjection) dto.ExternalOrderResponse {
	resp := dto.ExternalOrderResponse{
		OrderID:         p.ID,
		BusinessOrderID: p.BusinessOrderID,
		Status:          string(p.Status),
		Amount:          p.Amount.String(),
		Currency:        p.Currency,
		Channel:         p.Channel,
		PayURL:          p.PayURL,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.ProductInfo != nil {
		resp.Product = toProductResponse(p.ProductInfo)
	}
	if p.CompletedAt != nil {
		s := p.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}
