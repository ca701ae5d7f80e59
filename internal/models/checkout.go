package models

import (
	"bytes"
	"fmt"
	"strconv"
)

// Amount is a rupiah value that tolerates both JSON number and numeric
// string encodings. The checkout form posts plan prices as strings while
// Midtrans notifications carry gross_amount as "350000.00", so both shapes
// arrive at the API boundary.
type Amount float64

// UnmarshalJSON accepts `350000`, `350000.00` and `"350000"` alike.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(f)
	return nil
}

// Int64 truncates the fractional part. Gross amounts sent to the gateway are
// whole rupiah, truncated rather than rounded.
func (a Amount) Int64() int64 {
	return int64(a)
}

// CheckoutPlan is the plan selection echoed back by the checkout form.
type CheckoutPlan struct {
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

// CustomerDetails describes the buyer filling in the checkout form.
// Platform is "telegram" or "discord"; nothing beyond presence is validated.
type CustomerDetails struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Platform         string `json:"platform"`
	PlatformUsername string `json:"platformUsername"`
}

// CheckoutRequest is the body of POST /api/payment.
type CheckoutRequest struct {
	Plan            CheckoutPlan    `json:"plan"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// MissingFields reports which required checkout fields are absent.
func (r *CheckoutRequest) MissingFields() []string {
	var missing []string
	if r.Plan.Price == 0 {
		missing = append(missing, "plan.price")
	}
	if r.CustomerDetails.Name == "" {
		missing = append(missing, "customerDetails.name")
	}
	if r.CustomerDetails.Email == "" {
		missing = append(missing, "customerDetails.email")
	}
	return missing
}

// OrderData echoes the validated checkout input back to the client.
type OrderData struct {
	Plan            CheckoutPlan    `json:"plan"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// CheckoutResponse is the success body of POST /api/payment.
type CheckoutResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	OrderID   string    `json:"orderId"`
	OrderData OrderData `json:"orderData"`
}
