package services

import "testing"

func TestPlatformLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "telegram lowercase",
			input:    "telegram",
			expected: "https://t.me/+hIPGExXU2Bg2ZjY1",
		},
		{
			name:     "telegram title case",
			input:    "Telegram",
			expected: "https://t.me/+hIPGExXU2Bg2ZjY1",
		},
		{
			name:     "telegram uppercase",
			input:    "TELEGRAM",
			expected: "https://t.me/+hIPGExXU2Bg2ZjY1",
		},
		{
			name:     "discord",
			input:    "discord",
			expected: "https://discord.gg/pFAnhSGvXr",
		},
		{
			name:     "unknown platform",
			input:    "signal",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlatformLink(tt.input); got != tt.expected {
				t.Errorf("PlatformLink(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "hundreds of thousands", input: 350000, expected: "Rp 350.000"},
		{name: "millions", input: 7500000, expected: "Rp 7.500.000"},
		{name: "under one thousand", input: 999, expected: "Rp 999"},
		{name: "exactly one thousand", input: 1000, expected: "Rp 1.000"},
		{name: "zero", input: 0, expected: "Rp 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRupiah(tt.input); got != tt.expected {
				t.Errorf("FormatRupiah(%d) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatTransactionTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid timestamp",
			input:    "2025-03-14 15:09:26",
			expected: "Jumat, 14 Maret 2025 15.09.26 WIB",
		},
		{
			name:     "unparseable input returned verbatim",
			input:    "not-a-date",
			expected: "not-a-date",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTransactionTime(tt.input); got != tt.expected {
				t.Errorf("FormatTransactionTime(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
