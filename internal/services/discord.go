package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"traderid_server/internal/config"
	"traderid_server/internal/models"
)

// Embed colors per transaction status. Anything not listed renders gray.
var statusColors = map[string]int{
	"settlement": 0x00FF00,
	"capture":    0x00FF00,
	"pending":    0xFFA500,
	"deny":       0xFF0000,
	"cancel":     0xFF0000,
	"expire":     0xFF0000,
}

const defaultEmbedColor = 0x808080

// StatusColor returns the embed color for a transaction status,
// case-insensitively.
func StatusColor(status string) int {
	if color, ok := statusColors[strings.ToLower(status)]; ok {
		return color
	}
	return defaultEmbedColor
}

// Embed is the subset of Discord's embed object this service posts.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields"`
	Footer      EmbedFooter  `json:"footer"`
	Timestamp   string       `json:"timestamp"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

type webhookBody struct {
	Embeds []Embed `json:"embeds"`
}

// DiscordService posts payment embeds to a Discord webhook.
type DiscordService struct {
	webhookURL string
	client     *http.Client
	now        func() time.Time
}

func NewDiscordService(cfg *config.Config) *DiscordService {
	return &DiscordService{
		webhookURL: cfg.DiscordWebhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// BuildPaymentEmbed formats a transaction notification as a Discord embed:
// three fields (customer, payment, timestamps), a status footer, and the
// current time as an RFC3339 timestamp.
func (s *DiscordService) BuildPaymentEmbed(n *models.TransactionNotification) Embed {
	meta := n.Metadata

	paymentDetails := n.PaymentType
	if len(n.VANumbers) > 0 {
		va := n.VANumbers[0]
		paymentDetails += fmt.Sprintf(" (VA: %s - %s)", strings.ToUpper(va.Bank), va.VANumber)
	}

	timestamps := fmt.Sprintf("**Transaction:** %s", FormatTransactionTime(n.TransactionTime))
	if n.SettlementTime != "" {
		timestamps += fmt.Sprintf("\n**Settlement:** %s", FormatTransactionTime(n.SettlementTime))
	}

	return Embed{
		Title:       fmt.Sprintf("New Payment %s", n.TransactionStatus),
		Description: fmt.Sprintf("**%s**\n%s", meta.PlanName, FormatRupiah(n.GrossAmount.Int64())),
		Color:       StatusColor(n.TransactionStatus),
		Fields: []EmbedField{
			{
				Name: "Customer Information",
				Value: fmt.Sprintf("**Name:** %s\n**Email:** %s\n**Platform:** %s\n**Username:** %s",
					meta.CustomerName, meta.CustomerEmail, meta.Platform, meta.PlatformUsername),
			},
			{
				Name: "Payment Details",
				Value: fmt.Sprintf("**Method:** %s\n**Order ID:** %s\n**Transaction ID:** %s",
					paymentDetails, meta.OrderID, n.TransactionID),
			},
			{
				Name:  "Timestamps",
				Value: timestamps,
			},
		},
		Footer: EmbedFooter{
			Text: fmt.Sprintf("Status: %s | Fraud Status: %s", n.TransactionStatus, n.FraudStatus),
		},
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}

// NotifyPayment posts one embed for the notification. A missing webhook URL
// is a configuration error; transport failures are returned for the caller to
// report, never retried.
func (s *DiscordService) NotifyPayment(n *models.TransactionNotification) error {
	if s.webhookURL == "" {
		return fmt.Errorf("discord webhook URL is not configured")
	}

	payload, err := json.Marshal(webhookBody{Embeds: []Embed{s.BuildPaymentEmbed(n)}})
	if err != nil {
		return fmt.Errorf("failed to marshal embed: %w", err)
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to post to discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
