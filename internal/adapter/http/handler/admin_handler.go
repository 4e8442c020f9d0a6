package handler

import (
	"recharge-gateway/internal/adapter/http/dto"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"
	"recharge-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	orderRepo ports.OrderRepository
	notifier  ports.CallbackNotifier
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orderRepo ports.OrderRepository, notifier ports.CallbackNotifier) *AdminHandler {
	return &AdminHandler{orderRepo: orderRepo, notifier: notifier}
}

// RetryCallback handles POST /api/v1/admin/orders/:id/retry-callback.
// Runs one delivery attempt immediately, even when the automatic retry
// budget is spent.
func (h *AdminHandler) RetryCallback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid order id"))
		return
	}

	if err := h.notifier.Notify(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if order == nil {
		response.Error(c, apperror.ErrOrderNotFound())
		return
	}

	resp := dto.RetryCallbackResponse{OrderID: id.String()}
	if mc := order.Details.Merchant; mc != nil {
		resp.CallbackStatus = string(mc.CallbackStatus)
		resp.Attempts = mc.CallbackAttempts
	}
	response.OK(c, resp)
}
