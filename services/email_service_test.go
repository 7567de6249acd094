package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tasknest/tasknest/models"
	"tasknest/tasknest/secrets"

	"github.com/stretchr/testify/assert"
	"github.com/wneessen/go-mail"
)

func newTestResolver(t *testing.T) *secrets.Resolver {
	t.Helper()
	// Pin the env-based sources to empty so only the mount dir matters.
	t.Setenv("SMTP_USERNAME", "")
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("SMTP_USERNAME_FILE", "")
	t.Setenv("SMTP_PASSWORD_FILE", "")
	os.Unsetenv("SMTP_USERNAME_FILE")
	os.Unsetenv("SMTP_PASSWORD_FILE")
	return &secrets.Resolver{
		MountDir:     t.TempDir(),
		Placeholders: []string{"your-email@gmail.com", "your-app-password"},
	}
}

func mountCredentials(t *testing.T, r *secrets.Resolver, username, password string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(r.MountDir, "smtp_username"), []byte(username+"\n"), 0o600))
	assert.NoError(t, os.WriteFile(filepath.Join(r.MountDir, "smtp_password"), []byte(password+"\n"), 0o600))
}

func newTestEmailService(r *secrets.Resolver, send sendFunc) *EmailService {
	return &EmailService{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      587,
		Resolver:      r,
		SimulateDelay: 0,
		send:          send,
	}
}

var emailRequest = models.NotificationRequest{
	Type:      "email",
	Title:     "Task reminder",
	Message:   "Water the plants",
	Recipient: "user@example.com",
}

func TestSendEmail_SimulatesWithoutCredentials(t *testing.T) {
	sendCalled := false
	emailService := newTestEmailService(newTestResolver(t), func(host string, port int, username, password string, msg *mail.Msg) error {
		sendCalled = true
		return nil
	})

	result, err := emailService.SendEmail(emailRequest)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Simulated)
	assert.False(t, sendCalled)
	assert.Equal(t, "email", result.Type)
	assert.Equal(t, "user@example.com", result.Recipient)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Timestamp)
}

func TestSendEmail_SimulatesWithPlaceholderCredentials(t *testing.T) {
	resolver := newTestResolver(t)
	mountCredentials(t, resolver, "your-email@gmail.com", "your-app-password")

	sendCalled := false
	emailService := newTestEmailService(resolver, func(host string, port int, username, password string, msg *mail.Msg) error {
		sendCalled = true
		return nil
	})

	result, err := emailService.SendEmail(emailRequest)
	assert.NoError(t, err)
	assert.True(t, result.Simulated)
	assert.False(t, sendCalled)
}

func TestSendEmail_SendsWithResolvedCredentials(t *testing.T) {
	resolver := newTestResolver(t)
	mountCredentials(t, resolver, "sender@example.com", "app-password")

	var gotHost, gotUsername, gotPassword string
	var gotPort int
	emailService := newTestEmailService(resolver, func(host string, port int, username, password string, msg *mail.Msg) error {
		gotHost, gotPort, gotUsername, gotPassword = host, port, username, password
		return nil
	})

	result, err := emailService.SendEmail(emailRequest)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Simulated)
	assert.Equal(t, "smtp.example.com", gotHost)
	assert.Equal(t, 587, gotPort)
	assert.Equal(t, "sender@example.com", gotUsername)
	assert.Equal(t, "app-password", gotPassword)
}

func TestSendEmail_TransmissionFailure(t *testing.T) {
	resolver := newTestResolver(t)
	mountCredentials(t, resolver, "sender@example.com", "app-password")

	emailService := newTestEmailService(resolver, func(host string, port int, username, password string, msg *mail.Msg) error {
		return errors.New("dial tcp: connection refused")
	})

	_, err := emailService.SendEmail(emailRequest)
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSendEmail_InvalidRecipient(t *testing.T) {
	resolver := newTestResolver(t)
	mountCredentials(t, resolver, "sender@example.com", "app-password")

	emailService := newTestEmailService(resolver, func(host string, port int, username, password string, msg *mail.Msg) error {
		t.Fatal("send must not be reached with an invalid recipient")
		return nil
	})

	req := emailRequest
	req.Recipient = "not-an-address"
	_, err := emailService.SendEmail(req)
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestRenderEmailBody_HTMLUsedVerbatim(t *testing.T) {
	body, err := renderEmailBody(models.NotificationRequest{
		Title:   "Ignored",
		Message: "<h1>custom markup</h1>",
		IsHTML:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "<h1>custom markup</h1>", body)
}

func TestRenderEmailBody_PlainTextWrappedAndEscaped(t *testing.T) {
	body, err := renderEmailBody(models.NotificationRequest{
		Title:   "Reminder",
		Message: "stay <safe>",
	})
	assert.NoError(t, err)
	assert.Contains(t, body, "<html>")
	assert.Contains(t, body, "Reminder")
	assert.Contains(t, body, "stay &lt;safe&gt;")
	assert.NotContains(t, body, "stay <safe>")
}
