// Package smtpnotify implements the Notifier port over plain SMTP with
// HTML message bodies. Delivery is best-effort by contract: callers treat
// errors as log-worthy, never as transaction failures.
package smtpnotify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"printz/internal/core/ports"

	"github.com/google/uuid"
)

// Config carries the SMTP endpoint and sender identity.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier sends student-facing order emails. Each send gets a fresh
// correlation id logged on both outcomes, so a support request citing the
// id ties back to the exact SMTP attempt.
type SMTPNotifier struct {
	cfg    Config
	send   sendFunc
	logger *slog.Logger
}

// sendFunc matches smtp.SendMail, injectable for tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// NewSMTPNotifier creates a notifier sending through the configured relay.
func NewSMTPNotifier(cfg Config, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		send:   smtp.SendMail,
		logger: logger.With("component", "smtp_notifier"),
	}
}

// NotifyOrderCreated sends the order confirmation message.
func (n *SMTPNotifier) NotifyOrderCreated(ctx context.Context, notification ports.OrderCreatedNotification) error {
	body := confirmationBody(notification)
	return n.deliver(ctx, notification.Email, "Order Confirmation", body)
}

// NotifyStatusChanged sends the completion or failure message with a link
// back to the order.
func (n *SMTPNotifier) NotifyStatusChanged(ctx context.Context, notification ports.StatusChangedNotification) error {
	body := statusChangedBody(notification)
	subject := fmt.Sprintf("Order %s", notification.Status)
	return n.deliver(ctx, notification.Email, subject, body)
}

func (n *SMTPNotifier) deliver(ctx context.Context, to, subject, body string) error {
	correlationID := uuid.NewString()

	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"X-Correlation-ID: " + correlationID,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.send(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
		n.logger.ErrorContext(ctx, "Email delivery failed",
			"correlationId", correlationID,
			"subject", subject,
			"error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	n.logger.InfoContext(ctx, "Email delivered",
		"correlationId", correlationID,
		"subject", subject)
	return nil
}

func confirmationBody(n ports.OrderCreatedNotification) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2 style="color: #4CAF50;">Order Confirmation</h2>
  <p>Dear %s,</p>
  <p>Thank you for your order! Your payment has been successfully processed and %s will start on it shortly.</p>
  <table style="width: 100%%; border-collapse: collapse; margin-top: 20px;">
    <tr>
      <th style="text-align: left; padding: 10px; border: 1px solid #ddd;">Details</th>
      <th style="text-align: left; padding: 10px; border: 1px solid #ddd;">Information</th>
    </tr>
    <tr>
      <td style="padding: 10px; border: 1px solid #ddd;">Payment ID:</td>
      <td style="padding: 10px; border: 1px solid #ddd;"><strong>%s</strong></td>
    </tr>
    <tr>
      <td style="padding: 10px; border: 1px solid #ddd;">Total Amount:</td>
      <td style="padding: 10px; border: 1px solid #ddd;"><strong>%.2f</strong></td>
    </tr>
  </table>
  <p style="margin-top: 20px;">You will receive further updates via email.</p>
  <p>Best Regards,<br>The Printz Team</p>
</div>`, n.Username, n.ShopName, n.PaymentID, n.Total)
}

func statusChangedBody(n ports.StatusChangedNotification) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2 style="color: #4CAF50;">Order %s</h2>
  <p>Dear %s,</p>
  <p>Your order with %s has been marked <strong>%s</strong>.</p>
  <table style="width: 100%%; border-collapse: collapse; margin-top: 20px;">
    <tr>
      <td style="padding: 10px; border: 1px solid #ddd;">Payment ID:</td>
      <td style="padding: 10px; border: 1px solid #ddd;"><strong>%s</strong></td>
    </tr>
    <tr>
      <td style="padding: 10px; border: 1px solid #ddd;">Total Amount:</td>
      <td style="padding: 10px; border: 1px solid #ddd;"><strong>%.2f</strong></td>
    </tr>
  </table>
  <p style="margin-top: 20px;">
    <a href="%s" style="text-decoration: none; color: white; background-color: #4CAF50; padding: 10px 15px; border-radius: 5px; display: inline-block;">View Order</a>
  </p>
  <p>Best Regards,<br>The Printz Team</p>
</div>`, n.Status, n.Username, n.ShopName, n.Status, n.PaymentID, n.Total, n.Link)
}
