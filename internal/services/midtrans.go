package services

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"traderid_server/internal/config"
	"traderid_server/internal/models"
)

// MidtransService wraps the Snap client used to create checkout transactions.
type MidtransService struct {
	SnapClient snap.Client
	serverKey  string
}

func NewMidtransService(cfg *config.Config) *MidtransService {
	env := midtrans.Sandbox
	if cfg.MidtransIsProduction {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(cfg.MidtransServerKey, env)

	// Set Default Options
	midtrans.ServerKey = cfg.MidtransServerKey
	midtrans.ClientKey = cfg.MidtransClientKey
	midtrans.Environment = env

	// Route settlement notifications to this deployment's webhook instead of
	// whatever is configured on the Midtrans dashboard.
	midtrans.SetPaymentOverrideNotification(cfg.BaseURL + "/api/webhook")

	return &MidtransService{
		SnapClient: s,
		serverKey:  cfg.MidtransServerKey,
	}
}

// BuildSnapRequest maps a validated checkout request onto the Snap schema.
// The gross amount is the integer-truncated plan price, the phone defaults to
// "-" when absent, and the order context is echoed verbatim into metadata so
// the webhook can recover it later.
func BuildSnapRequest(req *models.CheckoutRequest, orderID, baseURL string) *snap.Request {
	phone := req.CustomerDetails.Phone
	if phone == "" {
		phone = "-"
	}

	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Plan.Price.Int64(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerDetails.Name,
			Email: req.CustomerDetails.Email,
			Phone: phone,
		},
		Callbacks: &snap.Callbacks{
			Finish: baseURL + "/payment/finish",
		},
		Metadata: models.OrderMetadata{
			OrderID:          orderID,
			PlanName:         req.Plan.Name,
			CustomerName:     req.CustomerDetails.Name,
			CustomerEmail:    req.CustomerDetails.Email,
			Platform:         req.CustomerDetails.Platform,
			PlatformUsername: req.CustomerDetails.PlatformUsername,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
	}
}

// CreateTransaction requests a Snap token for the given transaction. The
// returned error is the gateway's own *midtrans.Error when the gateway
// rejected the request, so callers can surface its message and status code.
func (s *MidtransService) CreateTransaction(param *snap.Request) (*snap.Response, error) {
	resp, err := s.SnapClient.CreateTransaction(param)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// VerifyNotificationSignature checks the SHA512 signature Midtrans attaches
// to webhook notifications: sha512(order_id + status_code + gross_amount +
// server key). The observed deployment never verified it; this is the opt-in
// hardening path behind MIDTRANS_VERIFY_SIGNATURE.
func (s *MidtransService) VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + s.serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}
