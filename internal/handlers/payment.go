package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"traderid_server/internal/models"
	"traderid_server/internal/services"
)

// SnapGateway creates checkout transactions at the payment gateway.
type SnapGateway interface {
	CreateTransaction(param *snap.Request) (*snap.Response, error)
}

// PaymentHandler serves the checkout endpoint.
type PaymentHandler struct {
	gateway SnapGateway
	baseURL string
}

func NewPaymentHandler(gateway SnapGateway, baseURL string) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, baseURL: baseURL}
}

// CreatePayment handles POST /api/payment: validate the checkout request,
// generate an order id, and exchange the transaction for a Snap token.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.Contains(contentType, echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusUnsupportedMediaType, map[string]interface{}{
			"success": false,
			"message": "Content-Type must be application/json",
		})
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	orderID := services.GenerateOrderID(time.Now())
	param := services.BuildSnapRequest(&req, orderID, h.baseURL)

	resp, err := h.gateway.CreateTransaction(param)
	if err != nil {
		var gatewayErr *midtrans.Error
		if errors.As(err, &gatewayErr) {
			log.Printf("Midtrans rejected order %s: %v", orderID, gatewayErr)
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"message": "Midtrans API Error",
				"details": gatewayErr.Message,
				"code":    gatewayErr.StatusCode,
			})
		}
		log.Printf("Failed to create transaction for order %s: %v", orderID, err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.CheckoutResponse{
		Success: true,
		Token:   resp.Token,
		OrderID: orderID,
		OrderData: models.OrderData{
			Plan:            req.Plan,
			CustomerDetails: req.CustomerDetails,
		},
	})
}
