package email

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Without SMTP credentials the service logs the content instead of dialing
// out, so registration flows keep working in development.
func TestSendVerificationEmailWithoutCredentials(t *testing.T) {
	svc := NewEmailService(SMTPConfig{
		FromName:  "HostelMate",
		FromEmail: "noreply@hostelmate.local",
	}, zerolog.Nop())

	assert.NoError(t, svc.SendVerificationEmail("student@institute.edu", "Asha", "123456"))
}

func TestSendPasswordResetEmailWithoutCredentials(t *testing.T) {
	svc := NewEmailService(SMTPConfig{}, zerolog.Nop())

	assert.NoError(t, svc.SendPasswordResetEmail("student@institute.edu", "Asha", "http://localhost:8080/reset"))
}

func TestSendWelcomeEmailWithoutCredentials(t *testing.T) {
	svc := NewEmailService(SMTPConfig{}, zerolog.Nop())

	assert.NoError(t, svc.SendWelcomeEmail("student@institute.edu", "Asha"))
}
