package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"github.com/sahayognepal/charity-backend/config"
)

var (
	smtpHost      string
	smtpPort      string
	smtpUsername  string
	smtpPassword  string
	smtpFromName  string
	smtpFromEmail string
	frontendURL   string
)

// InitMailer takes the SMTP settings from the loaded config. Must run
// after config.Load so values from .env are picked up.
func InitMailer(cfg *config.Config) {
	smtpHost = cfg.SMTPHost
	smtpPort = cfg.SMTPPort
	smtpUsername = cfg.SMTPUsername
	smtpPassword = cfg.SMTPPassword
	smtpFromName = cfg.SMTPFromName
	smtpFromEmail = cfg.SMTPFromEmail
	frontendURL = cfg.FrontendURL
}

func sendEmail(to, subject, body string) error {
	if smtpHost == "" || smtpUsername == "" || smtpPassword == "" {
		fmt.Println("⚠️ SMTP not configured. Email not sent.")
		return nil
	}

	if smtpFromEmail == "" {
		smtpFromEmail = smtpUsername
	}

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         smtpHost,
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(smtpFromEmail); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		smtpFromName, smtpFromEmail, to, subject, body,
	)
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// SendResetLink emails a password reset link valid for 15 minutes.
func SendResetLink(toEmail, resetToken string) error {
	base := frontendURL
	if base == "" {
		base = "http://localhost:5173"
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", base, resetToken)
	body := fmt.Sprintf(`
		<p>We received a request to reset your password.</p>
		<p><a href="%s">Click here to choose a new password</a></p>
		<p>The link expires in 15 minutes. If you didn't request this, ignore this email.</p>`, link)
	return sendEmail(toEmail, "Reset your password", body)
}

// SendDonationVerifiedEmail notifies a donor that their donation was verified.
func SendDonationVerifiedEmail(toEmail, donorName string, amount float64, currency string) {
	go func() {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your donation of %s %.2f has been verified on %s. Thank you for your support!</p>`,
			donorName, currency, amount, time.Now().Format("2 Jan 2006"))
		if err := sendEmail(toEmail, "Donation verified", body); err != nil {
			fmt.Printf("❌ Failed to send verification email to %s: %v\n", toEmail, err)
		}
	}()
}

// SendDonationRejectedEmail notifies a donor that their donation could not be verified.
func SendDonationRejectedEmail(toEmail, donorName string) {
	go func() {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>We could not verify your recent donation from the receipt provided.
			Please contact us so we can resolve this together.</p>`, donorName)
		if err := sendEmail(toEmail, "Donation could not be verified", body); err != nil {
			fmt.Printf("❌ Failed to send rejection email to %s: %v\n", toEmail, err)
		}
	}()
}
