package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/portfolio-cms/domain"
)

// ErrEmailNotSent is returned when the mailer fails
var ErrEmailNotSent = errors.New("email not sent, please try again")

type Service struct {
	mailer    domain.Mailer
	sender    string
	recipient string
	validate  *validator.Validate
}

var _ domain.ContactUsecase = (*Service)(nil)

// NewService relays contact messages from sender to recipient.
// An empty recipient falls back to the sender address.
func NewService(mailer domain.Mailer, sender, recipient string) *Service {
	if recipient == "" {
		recipient = sender
	}
	return &Service{
		mailer:    mailer,
		sender:    sender,
		recipient: recipient,
		validate:  validator.New(),
	}
}

func (s *Service) Send(ctx context.Context, from domain.User, msg domain.ContactMessage) error {
	if from.ID == "" || from.Email == "" {
		return domain.ErrUnauthorized
	}
	msg.Service = strings.TrimSpace(msg.Service)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.DiscountCode = strings.TrimSpace(msg.DiscountCode)

	var verrs validator.ValidationErrors
	if err := s.validate.Struct(msg); errors.As(err, &verrs) {
		return domain.InvalidField(verrs[0].Field())
	} else if err != nil {
		return err
	}

	e := domain.Email{
		To:      s.recipient,
		From:    s.sender,
		ReplyTo: from.Email,
		Subject: msg.Service,
		Body:    renderBody(from, msg),
	}
	if err := s.mailer.Send(ctx, e); err != nil {
		logrus.Errorf("failed to send contact email for user %s: %v", from.ID, err)
		return fmt.Errorf("%w: %v", ErrEmailNotSent, err)
	}
	return nil
}

func renderBody(from domain.User, msg domain.ContactMessage) string {
	esc := html.EscapeString
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(msg.Service))
	fmt.Fprintf(&b, "<p>%s</p>\n", esc(msg.Message))
	fmt.Fprintf(&b, "<p>Discount code: %s</p>\n", esc(msg.DiscountCode))
	if from.Name != "" {
		fmt.Fprintf(&b, "<p>From: %s &lt;%s&gt;</p>\n", esc(from.Name), esc(from.Email))
	}
	return b.String()
}
