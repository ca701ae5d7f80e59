package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "plain number", input: `350000`, expected: 350000},
		{name: "decimal string from midtrans", input: `"350000.00"`, expected: 350000},
		{name: "numeric string from checkout form", input: `"750000"`, expected: 750000},
		{name: "fractional value truncates", input: `350000.99`, expected: 350000},
		{name: "null is zero", input: `null`, expected: 0},
		{name: "empty string is zero", input: `""`, expected: 0},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) succeeded; want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if a.Int64() != tt.expected {
				t.Errorf("Unmarshal(%s).Int64() = %d; want %d", tt.input, a.Int64(), tt.expected)
			}
		})
	}
}

func TestCheckoutRequestMissingFields(t *testing.T) {
	tests := []struct {
		name     string
		req      CheckoutRequest
		expected []string
	}{
		{
			name: "complete request",
			req: CheckoutRequest{
				Plan:            CheckoutPlan{Name: "Essential Bundle", Price: 350000},
				CustomerDetails: CustomerDetails{Name: "Budi", Email: "budi@example.com"},
			},
			expected: nil,
		},
		{
			name:     "everything missing",
			req:      CheckoutRequest{},
			expected: []string{"plan.price", "customerDetails.name", "customerDetails.email"},
		},
		{
			name: "price missing",
			req: CheckoutRequest{
				CustomerDetails: CustomerDetails{Name: "Budi", Email: "budi@example.com"},
			},
			expected: []string{"plan.price"},
		},
		{
			name: "email missing",
			req: CheckoutRequest{
				Plan:            CheckoutPlan{Price: 350000},
				CustomerDetails: CustomerDetails{Name: "Budi"},
			},
			expected: []string{"customerDetails.email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.MissingFields(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("MissingFields() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestTransactionNotificationIsPaid(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{status: "settlement", expected: true},
		{status: "capture", expected: true},
		{status: "pending", expected: false},
		{status: "deny", expected: false},
		{status: "expire", expected: false},
		{status: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			n := TransactionNotification{TransactionStatus: tt.status}
			if got := n.IsPaid(); got != tt.expected {
				t.Errorf("IsPaid() with status %q = %v; want %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestTransactionNotificationValidate(t *testing.T) {
	n := TransactionNotification{TransactionStatus: "settlement", OrderID: "TID123456ab12"}
	if err := n.Validate(); err != nil {
		t.Errorf("Validate() on complete notification = %v; want nil", err)
	}

	n = TransactionNotification{OrderID: "TID123456ab12"}
	if err := n.Validate(); err == nil {
		t.Error("Validate() without transaction_status should fail")
	}

	n = TransactionNotification{TransactionStatus: "settlement"}
	if err := n.Validate(); err == nil {
		t.Error("Validate() without order_id should fail")
	}
}
