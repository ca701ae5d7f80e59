package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"traderid_server/internal/models"
	"traderid_server/internal/services"
)

// PaymentNotifier fans a settled payment out to the notification sinks.
type PaymentNotifier interface {
	NotifyPaymentSuccess(n *models.TransactionNotification) services.FanOutResult
}

// SignatureVerifier checks the gateway's notification signature.
type SignatureVerifier interface {
	VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool
}

// WebhookHandler receives asynchronous payment-status notifications from the
// gateway. There is no dedup store: redelivering a settlement notification
// re-runs the fan-out, which is the documented behavior of this system.
type WebhookHandler struct {
	notifier        PaymentNotifier
	verifier        SignatureVerifier
	verifySignature bool
}

func NewWebhookHandler(notifier PaymentNotifier, verifier SignatureVerifier, verifySignature bool) *WebhookHandler {
	return &WebhookHandler{
		notifier:        notifier,
		verifier:        verifier,
		verifySignature: verifySignature,
	}
}

// HandleNotification handles POST /api/webhook. Settlement and capture
// statuses trigger notification fan-out; every other status is acknowledged
// without side effects. Notification failures are logged but never flip the
// acknowledgment: the webhook reports that the settlement was received, not
// that every downstream sink succeeded.
func (h *WebhookHandler) HandleNotification(c echo.Context) error {
	var n models.TransactionNotification
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, models.WebhookResponse{
			Success: false,
			Message: "Invalid notification payload",
		})
	}

	if err := n.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.WebhookResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	if h.verifySignature {
		grossAmount := fmt.Sprintf("%.2f", float64(n.GrossAmount))
		if !h.verifier.VerifyNotificationSignature(n.OrderID, n.StatusCode, grossAmount, n.SignatureKey) {
			log.Printf("Rejected webhook for order %s: signature mismatch", n.OrderID)
			return c.JSON(http.StatusForbidden, models.WebhookResponse{
				Success: false,
				Message: "Invalid signature",
			})
		}
	}

	if !n.IsPaid() {
		log.Printf("Payment status %s for order %s, no action taken", n.TransactionStatus, n.OrderID)
		return c.JSON(http.StatusOK, models.WebhookResponse{
			Success: true,
			Message: "Webhook acknowledged",
		})
	}

	log.Printf("Processing successful payment for order %s", n.OrderID)
	result := h.notifier.NotifyPaymentSuccess(&n)
	if result.Failed() {
		if result.EmailErr != nil {
			log.Printf("Email notification failed for order %s: %v", n.OrderID, result.EmailErr)
		}
		if result.DiscordErr != nil {
			log.Printf("Discord notification failed for order %s: %v", n.OrderID, result.DiscordErr)
		}
	}

	return c.JSON(http.StatusOK, models.WebhookResponse{
		Success: true,
		Message: "Webhook processed successfully",
	})
}
