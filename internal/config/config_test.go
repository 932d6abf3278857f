package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_DRIVER", "BCRYPT_COST", "WORKERS", "SMTP_PORT", "SMTP_USER", "MAIL_FROM", "APP_MIGRATE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "4000", cfg.HTTPPort)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "Main_Blog", cfg.MongoDB)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.Migrate)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("WORKERS", "not-a-number")
	t.Setenv("APP_MIGRATE", "true")
	t.Setenv("SMTP_USER", "blog@example.com")
	t.Setenv("MAIL_FROM", "")

	cfg := FromEnv()
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Migrate)
	assert.Equal(t, "blog@example.com", cfg.MailFrom)
}
