package handler

import (
	"net/http"

	"recharge-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives inbound gateway callbacks. Channels expect a plain
// text body, not the JSON envelope: "SUCCESS" stops their retry loop, "FAIL"
// keeps it going.
type WebhookHandler struct {
	orderSvc ports.OrderService
	log      zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(orderSvc ports.OrderService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{orderSvc: orderSvc, log: log}
}

// Callback handles POST /api/v1/callbacks/:channel.
func (h *WebhookHandler) Callback(c *gin.Context) {
	channel := c.Param("channel")
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "FAIL")
		return
	}

	result := h.orderSvc.ApplyCallback(c.Request.Context(), channel, raw)

	h.log.Info().
		Str("channel", channel).
		Bool("accepted", result.Accepted).
		Bool("acknowledged", result.Acknowledged).
		Str("reason", result.Reason).
		Msg("gateway callback processed")

	if result.Acknowledged {
		c.String(http.StatusOK, "SUCCESS")
		return
	}
	c.String(http.StatusBadRequest, "FAIL")
}
