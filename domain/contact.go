package domain

import "context"

// User is the acting user as asserted by the authentication token.
// Accounts themselves are managed by another service.
type User struct {
	ID    string
	Name  string
	Email string
}

// ContactMessage is the body of the contact form
type ContactMessage struct {
	Service      string `validate:"required"`
	Message      string `validate:"required"`
	DiscountCode string `validate:"required"`
}

// Email is an outbound message
type Email struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer delivers outbound email
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// ContactUsecase relays contact-form messages to the site owner
type ContactUsecase interface {
	Send(ctx context.Context, from User, msg ContactMessage) error
}
