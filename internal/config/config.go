package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port          string `envconfig:"PORT" default:"5000"`
	MongoURI      string `envconfig:"MONGODB_URI" required:"true"`
	MongoDBName   string `envconfig:"MONGODB_NAME" default:"pranav-foods"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:3000"`

	EmailHost   string `envconfig:"EMAIL_SERVICE_HOST"`
	EmailPort   int    `envconfig:"EMAIL_SERVICE_PORT" default:"587"`
	EmailSecure bool   `envconfig:"EMAIL_SERVICE_SECURE"`
	EmailUser   string `envconfig:"EMAIL_USER"`
	EmailPass   string `envconfig:"EMAIL_PASS"`

	BusinessEmail1 string `envconfig:"BUSINESS_EMAIL_1"`
	BusinessEmail2 string `envconfig:"BUSINESS_EMAIL_2"`
}

func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config from environment")
	}

	return cfg, nil
}

// BusinessEmails returns the configured business recipients, skipping unset
// entries. An empty result means the confirmation endpoint cannot operate.
func (c *Config) BusinessEmails() []string {
	emails := make([]string, 0, 2)
	for _, email := range []string{c.BusinessEmail1, c.BusinessEmail2} {
		if email != "" {
			emails = append(emails, email)
		}
	}

	return emails
}
