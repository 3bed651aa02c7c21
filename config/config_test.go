package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"project-request-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMailEnv(t *testing.T) {
	t.Setenv("MAIL_TRANSPORT", "smtp")
	t.Setenv("MAIL_FROM", "studio@example.com")
	t.Setenv("SMTP_USERNAME", "studio@example.com")
	t.Setenv("SMTP_PASSWORD", "app-password")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Should load defaults around the mail credentials", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("ALLOWED_ORIGINS", "https://devscholar.example/, http://localhost:3000")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
		assert.Equal(t, "studio@example.com", cfg.ContactEmailTo)
		assert.Equal(t, "Dev Scholar", cfg.MailFromName)
		assert.Equal(t, 10*time.Second, cfg.MailSendTimeout)
		assert.Equal(t, []string{"https://devscholar.example", "http://localhost:3000"}, cfg.AllowedOrigins)
	})

	t.Run("Should refuse to start without SMTP credentials", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("SMTP_PASSWORD", "")

		cfg, err := config.LoadConfig()
		assert.Nil(t, cfg)
		assert.ErrorContains(t, err, "SMTP_USERNAME and SMTP_PASSWORD are required")
	})

	t.Run("Should refuse to start without a sender address", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("MAIL_FROM", "")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "MAIL_FROM is required")
	})

	t.Run("Should require an API key for mailersend", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("MAIL_TRANSPORT", "mailersend")
		t.Setenv("MAILERSEND_API_KEY", "")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "MAILERSEND_API_KEY is required")
	})

	t.Run("Should reject the log transport in release mode", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("MAIL_TRANSPORT", "log")
		t.Setenv("GIN_MODE", "release")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "log transport")
	})

	t.Run("Should reject unknown transports", func(t *testing.T) {
		setMailEnv(t)
		t.Setenv("MAIL_TRANSPORT", "pigeon")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, `unknown MAIL_TRANSPORT "pigeon"`)
	})
}

func TestLoadSite(t *testing.T) {
	t.Run("Should return defaults without a file", func(t *testing.T) {
		site, err := config.LoadSite("")
		require.NoError(t, err)
		assert.Len(t, site.ProjectTypes, 4)
		assert.Equal(t, "bsc", site.ProjectTypes[0].Value)
		assert.Len(t, site.NextSteps, 3)
	})

	t.Run("Should override only the keys present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		content := `
project_types:
  - value: web
    label: Web Application
    price: Custom Quote
next_steps:
  - We'll call you
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		site, err := config.LoadSite(path)
		require.NoError(t, err)
		require.Len(t, site.ProjectTypes, 1)
		assert.Equal(t, "Web Application", site.ProjectTypes[0].Label)
		assert.Equal(t, []string{"We'll call you"}, site.NextSteps)
		assert.Len(t, site.FormNextSteps, 3)
	})

	t.Run("Should reject project types without a label", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.yaml")
		require.NoError(t, os.WriteFile(path, []byte("project_types:\n  - value: web\n"), 0o600))

		_, err := config.LoadSite(path)
		assert.ErrorContains(t, err, "needs a value and a label")
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := config.LoadSite(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
