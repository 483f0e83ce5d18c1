package services

import (
	"context"
	"fmt"

	"slime-shop/config"

	"gopkg.in/gomail.v2"
)

// OrderEmail carries the checkout submission into the mail template. The
// field set mirrors the storefront's transactional-email contract.
type OrderEmail struct {
	OrderNumber     string
	FromName        string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	OrderDetails    string
	TotalAmount     string
}

type Mailer interface {
	SendOrderEmail(ctx context.Context, e OrderEmail) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
		to:     cfg.ContactEmail,
	}, nil
}

// SendOrderEmail dispatches the order to the shop mailbox with the
// customer's address as Reply-To. No retry is built in; the checkout flow
// surfaces failures and lets the user resubmit.
func (s *EmailService) SendOrderEmail(_ context.Context, e OrderEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", e.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Order %s - Super Kid Slimes", e.OrderNumber))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #14b8a6; }
        .order-box { background-color: #f0fdfa; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .details { white-space: pre-line; font-family: monospace; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Super Kid Slimes</div>
        </div>
        <h2 style="color: #333;">New Order %s</h2>

        <div class="order-box">
            <p><strong>Customer:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Address:</strong> %s</p>
        </div>

        <div class="order-box">
            <div class="details">%s</div>
            <p><strong>Total: %s</strong></p>
        </div>

        <p>Payment is collected on delivery.</p>

        <div class="footer">
            <p>This is an automated email from the Super Kid Slimes storefront.</p>
        </div>
    </div>
</body>
</html>
	`, e.OrderNumber, e.FromName, e.CustomerEmail, e.CustomerPhone, e.CustomerAddress,
		e.OrderDetails, e.TotalAmount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
