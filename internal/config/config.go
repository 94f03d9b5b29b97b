package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	PostgresqlURL string `env:"POSTGRESQL_URL"`
	RedisURL      string `env:"REDIS_URL"`
	RabbitmqURL   string `env:"RABBITMQ_URL"`

	RabbitmqSubmissionExchange string `env:"RABBITMQ_SUBMISSION_EXCHANGE" envDefault:"reachout"`
	RabbitmqSubmissionRK       string `env:"RABBITMQ_SUBMISSION_RK" envDefault:"submission.accepted"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey string `env:"AWS_SECRET_KEY"`

	EmailSender        string `env:"EMAIL_SENDER"`
	OperatorAlertEmail string `env:"OPERATOR_ALERT_EMAIL"`
	PublicBaseURL      string `env:"PUBLIC_BASE_URL" envDefault:"https://reachout.to"`

	MonthlySubmissionLimit uint32 `env:"MONTHLY_SUBMISSION_LIMIT" envDefault:"100"`
	RateLimitPerIP         uint16 `env:"RATE_LIMIT_PER_IP" envDefault:"5"`
	RateLimitPerForm       uint16 `env:"RATE_LIMIT_PER_FORM" envDefault:"20"`

	MonthlyResetCheckPeriod time.Duration `env:"MONTHLY_RESET_CHECK_PERIOD" envDefault:"1h"`

	SentryDsn string `env:"SENTRY_DSN"`
}

func (c *Config) Validate() error {
	emailSenderRules := []validation.Rule{is.Email}
	if !c.IsTestMode {
		emailSenderRules = append(emailSenderRules, validation.Required)
	}
	return validation.ValidateStruct(
		c,
		validation.Field(&c.PostgresqlURL, validation.Required),
		validation.Field(&c.EmailSender, emailSenderRules...),
		validation.Field(&c.OperatorAlertEmail, is.Email),
		validation.Field(&c.PublicBaseURL, validation.Required, is.URL),
		validation.Field(&c.MonthlySubmissionLimit, validation.Required),
		validation.Field(&c.RateLimitPerIP, validation.Required),
		validation.Field(&c.RateLimitPerForm, validation.Required),
	)
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
