package models

import "fmt"

// OrderMetadata is the order context round-tripped through the gateway's
// opaque metadata field. It is the only channel by which the webhook recovers
// human-readable order details, since no order registry exists.
type OrderMetadata struct {
	OrderID          string `json:"order_id"`
	PlanName         string `json:"plan_name"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	Platform         string `json:"platform"`
	PlatformUsername string `json:"platform_username"`
}

// VANumber is a virtual account reference attached to bank-transfer payments.
type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// TransactionNotification is the payload Midtrans posts to the webhook
// endpoint. Only the fields the notification pipeline reads are modeled;
// settlement_time and va_numbers are optional depending on payment type.
type TransactionNotification struct {
	TransactionTime   string        `json:"transaction_time"`
	TransactionStatus string        `json:"transaction_status"`
	TransactionID     string        `json:"transaction_id"`
	StatusCode        string        `json:"status_code"`
	SignatureKey      string        `json:"signature_key"`
	SettlementTime    string        `json:"settlement_time,omitempty"`
	PaymentType       string        `json:"payment_type"`
	OrderID           string        `json:"order_id"`
	GrossAmount       Amount        `json:"gross_amount"`
	FraudStatus       string        `json:"fraud_status"`
	VANumbers         []VANumber    `json:"va_numbers,omitempty"`
	Metadata          OrderMetadata `json:"metadata"`
}

// Validate checks the fields every downstream consumer depends on, so absence
// surfaces at the boundary instead of deep inside formatting code.
func (n *TransactionNotification) Validate() error {
	if n.TransactionStatus == "" {
		return fmt.Errorf("missing transaction_status")
	}
	if n.OrderID == "" {
		return fmt.Errorf("missing order_id")
	}
	return nil
}

// IsPaid reports whether the notification carries a terminal success status.
func (n *TransactionNotification) IsPaid() bool {
	return n.TransactionStatus == "settlement" || n.TransactionStatus == "capture"
}

// WebhookResponse is the acknowledgment body for POST /api/webhook.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
