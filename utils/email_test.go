package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahayognepal/charity-backend/config"
)

func TestMailerReadsConfigNotEnvironment(t *testing.T) {
	// An SMTP host in the environment alone must not arm the mailer;
	// only values passed through the loaded config count.
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")

	InitMailer(&config.Config{})

	assert.Empty(t, smtpHost)
	// Unconfigured SMTP means sends are skipped, not failed.
	assert.NoError(t, SendResetLink("donor@example.com", "token123"))
}

func TestInitMailerAppliesConfig(t *testing.T) {
	InitMailer(&config.Config{
		SMTPHost:      "smtp.example.com",
		SMTPPort:      "587",
		SMTPUsername:  "mailer",
		SMTPPassword:  "secret",
		SMTPFromName:  "Sahayog Nepal",
		SMTPFromEmail: "noreply@example.com",
		FrontendURL:   "https://donate.example.com",
	})
	t.Cleanup(func() { InitMailer(&config.Config{}) })

	assert.Equal(t, "smtp.example.com", smtpHost)
	assert.Equal(t, "587", smtpPort)
	assert.Equal(t, "https://donate.example.com", frontendURL)
}
