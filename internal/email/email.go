package email

import (
	"fmt"

	"github.com/Domenick1991/airadmin/config"
	"github.com/Domenick1991/airadmin/internal/kafka"
	"gopkg.in/gomail.v2"
)

// Sender delivers booking notifications over SMTP.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *Sender) Send(event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}

	subject, body := compose(event)
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", event.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send %s notification for booking %s: %w", event.Type, event.Reference, err)
	}
	return nil
}

func compose(event kafka.BookingEvent) (subject, body string) {
	switch event.Type {
	case "booking_cancelled":
		subject = fmt.Sprintf("Booking %s cancelled", event.Reference)
		body = fmt.Sprintf("Your booking %s for flight %d has been cancelled.", event.Reference, event.FlightID)
	default:
		subject = fmt.Sprintf("Booking %s confirmed", event.Reference)
		body = fmt.Sprintf("Your booking %s for flight %d is confirmed. Price charged: %.2f.",
			event.Reference, event.FlightID, float64(event.PriceCents)/100)
	}
	return subject, body
}
