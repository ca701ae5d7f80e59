package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"traderid_server/internal/config"
)

// smtpDialTimeout bounds the connection attempt; net/smtp itself never
// times out.
const smtpDialTimeout = 15 * time.Second

// EmailService sends transactional HTML mail over SMTP.
type EmailService struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
	}
}

// SendHTML sends a single HTML message to one recipient.
func (s *EmailService) SendHTML(to, subject, body string) error {
	if s.host == "" || s.port == "" || s.user == "" || s.password == "" {
		return fmt.Errorf("SMTP credentials not fully configured")
	}

	message := []byte(fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"%s\r\n", s.from, to, subject, body))

	addr := net.JoinHostPort(s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)

	// Port 465 speaks TLS from the first byte; anything else goes through
	// the plain dial + STARTTLS path that smtp.SendMail already implements.
	var err error
	if s.port == "465" {
		err = s.sendImplicitTLS(addr, auth, to, message)
	} else {
		err = smtp.SendMail(addr, auth, s.from, []string{to}, message)
	}
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

func (s *EmailService) sendImplicitTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
