package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"newsroom-be/internal/config"
	"newsroom-be/internal/pkg/logger"
)

type IEmailService interface {
	SendContactMessage(name, email, subject, message string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	from   string
	inbox  string
	log    logger.ILogger
}

func NewEmailService(cfg *config.Config, log logger.ILogger) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password)

	return &EmailService{
		dialer: dialer,
		from:   fmt.Sprintf("%s <%s>", cfg.SMTP.SenderName, cfg.SMTP.Email),
		inbox:  cfg.SMTP.ContactInbox,
		log:    log,
	}
}

// SendContactMessage forwards a contact-form submission to the newsroom
// inbox. Reply-To is set to the visitor's address so editors can answer
// directly from their mail client.
func (s *EmailService) SendContactMessage(name, email, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.inbox)
	m.SetHeader("Reply-To", m.FormatAddress(email, name))
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))

	body := fmt.Sprintf(`
		<h2>Nouveau message via le formulaire de contact</h2>
		<p><strong>Nom :</strong> %s</p>
		<p><strong>Email :</strong> %s</p>
		<p><strong>Sujet :</strong> %s</p>
		<hr>
		<p>%s</p>
	`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(subject), html.EscapeString(message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("mailer", "failed to send contact message", map[string]interface{}{
			"error": err.Error(),
			"from":  email,
		})
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	s.log.Info("mailer", "contact message forwarded", map[string]interface{}{
		"from": email,
	})
	return nil
}
