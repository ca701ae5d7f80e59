package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"traderid_server/internal/config"
	"traderid_server/internal/models"
)

// EmailSender sends one HTML message to one recipient.
type EmailSender interface {
	SendHTML(to, subject, body string) error
}

// DiscordNotifier posts one payment notification to Discord.
type DiscordNotifier interface {
	NotifyPayment(n *models.TransactionNotification) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FanOutResult collects the independent outcomes of one notification fan-out.
// Either side may fail without affecting the other.
type FanOutResult struct {
	EmailErr     error
	EmailSkipped bool
	DiscordErr   error
}

// Failed reports whether any attempted notification failed.
func (r FanOutResult) Failed() bool {
	return r.EmailErr != nil || r.DiscordErr != nil
}

// NotificationService fans a settled payment out to email and Discord.
type NotificationService struct {
	email      EmailSender
	discord    DiscordNotifier
	adminEmail string
	now        func() time.Time
}

func NewNotificationService(cfg *config.Config, email EmailSender, discord DiscordNotifier) *NotificationService {
	return &NotificationService{
		email:      email,
		discord:    discord,
		adminEmail: cfg.AdminEmail,
		now:        time.Now,
	}
}

// NotifyPaymentSuccess runs the email and Discord notifications concurrently
// and waits for both. The two sides share no state and are strictly
// best-effort: a failure in one never prevents the other from being
// attempted.
func (s *NotificationService) NotifyPaymentSuccess(n *models.TransactionNotification) FanOutResult {
	var result FanOutResult
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		result.EmailSkipped, result.EmailErr = s.sendPaymentEmails(n)
	}()
	go func() {
		defer wg.Done()
		result.DiscordErr = s.discord.NotifyPayment(n)
	}()
	wg.Wait()

	return result
}

// sendPaymentEmails sends the admin summary and the customer receipt. An
// absent or malformed customer email skips both sends; that is a logged
// soft-skip, not an error, since a bogus address would bounce anyway and the
// Discord alert still carries the order context.
func (s *NotificationService) sendPaymentEmails(n *models.TransactionNotification) (skipped bool, err error) {
	meta := n.Metadata

	if !emailPattern.MatchString(meta.CustomerEmail) {
		log.Printf("Skipping payment emails for order %s: invalid customer email %q", n.OrderID, meta.CustomerEmail)
		return true, nil
	}

	data := paymentEmailData{
		Status:          n.TransactionStatus,
		Metadata:        meta,
		Amount:          FormatRupiah(n.GrossAmount.Int64()),
		PaymentType:     n.PaymentType,
		TransactionTime: FormatTransactionTime(n.TransactionTime),
		TransactionID:   n.TransactionID,
		PlatformLink:    template.URL(PlatformLink(meta.Platform)),
		SupportEmail:    s.adminEmail,
		Year:            s.now().Year(),
	}

	var adminBody bytes.Buffer
	if err := adminEmailTemplate.Execute(&adminBody, data); err != nil {
		return false, fmt.Errorf("failed to render admin email: %w", err)
	}

	adminSubject := fmt.Sprintf("[Admin] New Payment %s - Order %s", n.TransactionStatus, meta.OrderID)
	if err := s.email.SendHTML(s.adminEmail, adminSubject, adminBody.String()); err != nil {
		return false, err
	}

	// The customer-facing receipt shows the payment method upper-cased.
	customerData := data
	customerData.PaymentType = strings.ToUpper(n.PaymentType)

	var customerBody bytes.Buffer
	if err := customerEmailTemplate.Execute(&customerBody, customerData); err != nil {
		return false, fmt.Errorf("failed to render customer email: %w", err)
	}

	customerSubject := fmt.Sprintf("Payment %s - The Trader ID", n.TransactionStatus)
	if err := s.email.SendHTML(meta.CustomerEmail, customerSubject, customerBody.String()); err != nil {
		return false, err
	}

	return false, nil
}
