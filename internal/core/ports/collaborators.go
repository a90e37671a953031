package ports

import (
	"context"

	"fastereats/internal/core/domain/model/kernel"
	"fastereats/internal/core/domain/model/order"
)

// Contact is what the user directory knows about a customer, courier or
// restaurant owner.
type Contact struct {
	ID        kernel.UUID
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// UserDirectory resolves identities to contact details.
type UserDirectory interface {
	GetUser(ctx context.Context, id kernel.UUID) (Contact, error)
}

// Attachment is a file sent along with an email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email is a message for the notification channel.
type Email struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Notifier delivers SMS and email. Callers treat its failures as non-fatal.
type Notifier interface {
	SendSMS(ctx context.Context, to, message string) error
	SendEmail(ctx context.Context, email Email) error
}

// InvoiceRenderer turns an order into a customer-facing invoice document.
type InvoiceRenderer interface {
	Render(ctx context.Context, o *order.Order, customer Contact) (Attachment, error)
}
