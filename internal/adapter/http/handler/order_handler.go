package handler

import (
	"time"

	"recharge-gateway/internal/adapter/http/dto"
	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"
	"recharge-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles platform-user order endpoints.
type OrderHandler struct {
	orderSvc ports.OrderService
	pkgRepo  ports.PackageRepository
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderSvc ports.OrderService, pkgRepo ports.PackageRepository) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, pkgRepo: pkgRepo}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user_id"))
		return
	}

	result, err := h.orderSvc.CreateOrder(c.Request.Context(), ports.CreateOrderRequest{
		UserID:    userID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		PackageID: req.PackageID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toOrderResponse(result))
}

// ListPackages handles GET /api/v1/packages.
func (h *OrderHandler) ListPackages(c *gin.Context) {
	packages, err := h.pkgRepo.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	out := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, dto.PackageResponse{
			ID:           p.ID,
			Label:        p.Label,
			Price:        p.Price.String(),
			Currency:     p.Currency,
			BaseCredit:   p.BaseCredit,
			BonusPercent: p.BonusPercent,
			TotalCredit:  p.TotalCredit,
		})
	}
	response.OK(c, out)
}

// toOrderResponse converts an order projection to the platform DTO.
func toOrderResponse(p *ports.OrderProjection) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:              p.ID,
		Status:          string(p.Status),
		Amount:          p.Amount.String(),
		Currency:        p.Currency,
		SettledAmount:   p.SettledAmount.String(),
		SettledCurrency: p.SettledCurrency,
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

func toProductResponse(snap *domain.PackageSnapshot) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          snap.ID,
		Label:       snap.Label,
		Price:       snap.Price.String(),
		Currency:    snap.Currency,
		TotalCredit: snap.TotalCredit,
	}
}
