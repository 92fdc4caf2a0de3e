package service

import "github.com/sefazor/galbi-backend/pkg/email"

// Mailer is the mail delivery the services depend on.
type Mailer interface {
	SendWelcomeEmail(to, username string, freeGenerations int) error
	SendPremiumReceipt(to, username string, r email.Receipt) error
}
