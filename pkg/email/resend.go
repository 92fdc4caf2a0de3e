package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Config struct {
	APIKey      string
	FromAddress string
	FromName    string
	AppURL      string
}

// Receipt is the data shown in a premium upgrade email.
type Receipt struct {
	PaymentID   uint
	AmountCents int
	Currency    string
	PaidAt      time.Time
}

// sendFunc delivers one message and returns the provider message id.
type sendFunc func(params *resend.SendEmailRequest) (string, error)

// EmailService sends transactional mail through Resend. Without an API key
// messages are rendered and logged but never sent.
type EmailService struct {
	sender   sendFunc
	from     string
	fromName string
	appURL   string
	logger   *zap.Logger
}

func NewEmailService(cfg Config, logger *zap.Logger) *EmailService {
	s := &EmailService{
		from:     cfg.FromAddress,
		fromName: cfg.FromName,
		appURL:   cfg.AppURL,
		logger:   logger.Named("email"),
	}
	if cfg.APIKey != "" {
		client := resend.NewClient(cfg.APIKey)
		s.sender = func(params *resend.SendEmailRequest) (string, error) {
			resp, err := client.Emails.Send(params)
			if err != nil {
				return "", err
			}
			return resp.Id, nil
		}
	}
	return s
}

func (s *EmailService) SendWelcomeEmail(to, username string, freeGenerations int) error {
	html, err := s.render("welcome.html", map[string]interface{}{
		"Username":        username,
		"FreeGenerations": freeGenerations,
		"AppURL":          s.appURL,
		"Year":            time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, "Welcome to Galbi!", html)
}

func (s *EmailService) SendPremiumReceipt(to, username string, r Receipt) error {
	html, err := s.render("premium-receipt.html", map[string]interface{}{
		"Username":  username,
		"PaymentID": r.PaymentID,
		"Amount":    FormatAmount(r.AmountCents, r.Currency),
		"Date":      r.PaidAt.Format("January 2, 2006"),
		"Year":      r.PaidAt.Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, "Your Galbi Premium receipt", html)
}

func (s *EmailService) send(to, subject, html string) error {
	if s.sender == nil {
		s.logger.Info("email delivery disabled, skipping", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	id, err := s.sender(params)
	if err != nil {
		s.logger.Error("failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject), zap.String("id", id))
	return nil
}

func (s *EmailService) render(name string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return body.String(), nil
}

// FormatAmount renders minor units, e.g. 999 usd as "9.99 USD".
func FormatAmount(cents int, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, strings.ToUpper(currency))
}
