package services

import (
	"testing"

	"traderid_server/internal/config"
	"traderid_server/internal/models"
)

func checkoutRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Plan: models.CheckoutPlan{Name: "Essential Bundle", Price: 350000},
		CustomerDetails: models.CustomerDetails{
			Name:             "Budi",
			Email:            "budi@example.com",
			Platform:         "telegram",
			PlatformUsername: "@budi",
		},
	}
}

func TestBuildSnapRequest(t *testing.T) {
	req := checkoutRequest()
	param := BuildSnapRequest(req, "TID123456ab12", "https://thetraderid.com")

	if param.TransactionDetails.OrderID != "TID123456ab12" {
		t.Errorf("order id = %q", param.TransactionDetails.OrderID)
	}
	if param.TransactionDetails.GrossAmt != 350000 {
		t.Errorf("gross amount = %d; want 350000", param.TransactionDetails.GrossAmt)
	}
	if param.CustomerDetail.FName != "Budi" || param.CustomerDetail.Email != "budi@example.com" {
		t.Errorf("customer detail = %+v", param.CustomerDetail)
	}
	if param.Callbacks.Finish != "https://thetraderid.com/payment/finish" {
		t.Errorf("finish callback = %q", param.Callbacks.Finish)
	}
	if param.CreditCard == nil || !param.CreditCard.Secure {
		t.Error("credit card 3DS should be enabled")
	}

	meta, ok := param.Metadata.(models.OrderMetadata)
	if !ok {
		t.Fatalf("metadata has type %T; want models.OrderMetadata", param.Metadata)
	}
	want := models.OrderMetadata{
		OrderID:          "TID123456ab12",
		PlanName:         "Essential Bundle",
		CustomerName:     "Budi",
		CustomerEmail:    "budi@example.com",
		Platform:         "telegram",
		PlatformUsername: "@budi",
	}
	if meta != want {
		t.Errorf("metadata = %+v; want %+v", meta, want)
	}
}

func TestBuildSnapRequestTruncatesFractionalPrice(t *testing.T) {
	req := checkoutRequest()
	req.Plan.Price = 350000.99

	param := BuildSnapRequest(req, "TID123456ab12", "https://thetraderid.com")
	if param.TransactionDetails.GrossAmt != 350000 {
		t.Errorf("gross amount = %d; want fractional rupiah truncated, not rounded", param.TransactionDetails.GrossAmt)
	}
}

func TestBuildSnapRequestDefaultsPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{name: "absent phone becomes dash", phone: "", expected: "-"},
		{name: "provided phone kept", phone: "081234567890", expected: "081234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := checkoutRequest()
			req.CustomerDetails.Phone = tt.phone

			param := BuildSnapRequest(req, "TID123456ab12", "https://thetraderid.com")
			if param.CustomerDetail.Phone != tt.expected {
				t.Errorf("phone = %q; want %q", param.CustomerDetail.Phone, tt.expected)
			}
		})
	}
}

func TestVerifyNotificationSignature(t *testing.T) {
	s := NewMidtransService(&config.Config{MidtransServerKey: "test-server-key"})

	// sha512("TID123456ab12" + "200" + "350000.00" + "test-server-key")
	valid := "56d9ddf41846cb72b9d209938ac72a9b52f4e023a757ce7cd51f9448b3654da992e64df25d55509fc8e1bcfbf4aab8b60f35283e384dc2b39be5f262a079edcb"

	if !s.VerifyNotificationSignature("TID123456ab12", "200", "350000.00", valid) {
		t.Error("expected a correctly derived signature to verify")
	}
	if s.VerifyNotificationSignature("TID123456ab12", "200", "350000.00", "deadbeef") {
		t.Error("expected a bogus signature to fail verification")
	}
}
