package email

import (
	"errors"
	"go-jobboard-backend/config"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewEmailService(&config.Config{}).IsConfigured())
	assert.True(t, NewEmailService(&config.Config{
		SMTPHost: "smtp.example.com", SMTPUsername: "user", SMTPPassword: "pass",
	}).IsConfigured())
}

func TestSendPasswordReset(t *testing.T) {
	svc := NewEmailService(&config.Config{
		SMTPHost: "smtp.example.com", SMTPPort: "587", SMTPUsername: "user",
		SMTPPassword: "pass", SMTPFromEmail: "noreply@example.com",
	})

	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	svc.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	link := "http://localhost:5173/reset-password?token=abc"
	require.NoError(t, svc.SendPasswordReset("jane@example.com", "Jane <script>", link))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"jane@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "From: noreply@example.com")
	assert.Contains(t, gotMsg, "reset-password?token=abc")
	assert.Contains(t, gotMsg, "Jane &lt;script&gt;")
}

func TestSendPasswordResetWrapsTransportError(t *testing.T) {
	svc := NewEmailService(&config.Config{SMTPHost: "smtp.example.com"})
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}
	err := svc.SendPasswordReset("jane@example.com", "Jane", "http://x/reset-password?token=1")
	assert.ErrorContains(t, err, "failed to send email")
}
