package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"time"

	"tasknest/tasknest/config"
	"tasknest/tasknest/models"
	"tasknest/tasknest/secrets"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

type EmailServiceInterface interface {
	SendEmail(req models.NotificationRequest) (models.DeliveryResult, error)
}

type sendFunc func(host string, port int, username, password string, msg *mail.Msg) error

// EmailService relays notification requests over SMTP. Credentials are
// resolved on every send; when they are missing or placeholders the send is
// simulated so unconfigured environments stay usable.
type EmailService struct {
	SMTPHost      string
	SMTPPort      int
	Resolver      *secrets.Resolver
	SimulateDelay time.Duration
	send          sendFunc
}

func NewEmailService(cfg config.Config, resolver *secrets.Resolver) *EmailService {
	return &EmailService{
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		Resolver:      resolver,
		SimulateDelay: 500 * time.Millisecond,
		send:          smtpSend,
	}
}

const plainBodyTemplate = `<html>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: #00bcd4; color: white; padding: 30px; text-align: center; border-radius: 15px 15px 0 0;">
      <h1 style="margin: 0; font-size: 24px;">{{.Subject}}</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">Task API - Notification System</p>
    </div>
    <div style="padding: 30px; background: white; border-radius: 0 0 15px 15px;">
      <div style="background: #e1f5fe; padding: 20px; border-radius: 12px; border-left: 5px solid #00bcd4;">
        <pre style="white-space: pre-wrap; line-height: 1.6; margin: 0; color: #263238; font-size: 14px;">{{.Body}}</pre>
      </div>
      <div style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #e1f5fe; text-align: center;">
        <p style="color: #0277bd; margin: 0;">Sent by the Task API notification system</p>
        <p style="color: #0097a7; font-size: 12px; margin: 5px 0 0 0;">{{.SentAt}}</p>
      </div>
    </div>
  </body>
</html>`

var emailTemplate = template.Must(template.New("email").Parse(plainBodyTemplate))

// renderEmailBody returns the HTML content for the message. An isHtml request
// supplies its body verbatim; plain text is wrapped in the fixed template.
func renderEmailBody(req models.NotificationRequest) (string, error) {
	if req.IsHTML {
		return req.Message, nil
	}

	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, struct {
		Subject string
		Body    string
		SentAt  string
	}{
		Subject: req.Title,
		Body:    req.Message,
		SentAt:  time.Now().Format("02/01/2006 at 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *EmailService) SendEmail(req models.NotificationRequest) (models.DeliveryResult, error) {
	username, _ := s.Resolver.Resolve("smtp_username")
	password, _ := s.Resolver.Resolve("smtp_password")

	result := models.DeliveryResult{
		ID:        uuid.New().String(),
		Type:      req.Type,
		Recipient: req.Recipient,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if username == "" || password == "" || s.Resolver.IsPlaceholder(username) || s.Resolver.IsPlaceholder(password) {
		log.Printf("SMTP credentials not configured, simulating email delivery")
		log.Printf("  recipient: %s", req.Recipient)
		log.Printf("  subject: %s", req.Title)
		time.Sleep(s.SimulateDelay)
		result.Success = true
		result.Simulated = true
		result.Message = "email delivery simulated (credentials not configured)"
		return result, nil
	}

	body, err := renderEmailBody(req)
	if err != nil {
		return models.DeliveryResult{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	msg := mail.NewMsg()
	if err := msg.From(username); err != nil {
		return models.DeliveryResult{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if err := msg.To(req.Recipient); err != nil {
		return models.DeliveryResult{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	msg.Subject(req.Title)
	msg.SetBodyString(mail.TypeTextHTML, body)

	log.Printf("Sending email to %s via %s:%d", req.Recipient, s.SMTPHost, s.SMTPPort)
	if err := s.send(s.SMTPHost, s.SMTPPort, username, password, msg); err != nil {
		log.Printf("Email send failed: %v", err)
		return models.DeliveryResult{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	log.Printf("Email sent successfully to %s", req.Recipient)
	result.Success = true
	result.Message = "email sent successfully"
	return result, nil
}

// EmailServiceInstance is constructed in main once configuration is loaded.
var EmailServiceInstance EmailServiceInterface

// smtpSend performs the real delivery: STARTTLS session with PLAIN auth.
func smtpSend(host string, port int, username, password string, msg *mail.Msg) error {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}
