package models

// Plan represents one subscription bundle from the pricing catalog.
type Plan struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Period      string   `json:"period,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Savings     string   `json:"savings,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// PricingPlans is the static catalog rendered on the landing page. Checkout
// requests echo the selected plan back in the request body, so the catalog is
// presentation data only and nothing is ever looked up or persisted by ID.
var PricingPlans = []Plan{
	{
		Name:        "Essential Bundle",
		Description: "Perfect for beginners who want to start their trading journey",
		Price:       350000,
		Period:      "1 Bulan",
		Features: []string{
			"Akses ke Grup VIP",
			"Daily Market Updates",
			"Basic Trading Education",
			"Trading Signals",
		},
	},
	{
		Name:        "The Trader Bundle",
		Description: "Most popular choice for serious traders",
		Price:       750000,
		Period:      "3 Bulan",
		Featured:    true,
		Savings:     "300.000",
		Features: []string{
			"Semua fitur Essential Bundle",
			"Premium Trading Signals",
			"Advanced Trading Strategies",
			"Weekly Market Analysis",
			"Priority Support",
		},
	},
	{
		Name:        "Ultimate Bundle",
		Description: "For committed traders who want lifetime access",
		Price:       7500000,
		Period:      "Lifetime",
		Features: []string{
			"Akses Selamanya",
			"Semua fitur The Trader Bundle",
			"One-on-One Mentoring",
			"Exclusive Webinars",
			"Custom Trading Plans",
			"24/7 VIP Support",
		},
	},
}
