package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTP
	Logger Logger
	Wave   Wave
	GitHub GitHub
	Kafka  Kafka
	Mailer Mailer
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Wave credentials are optional on purpose: the invoice endpoint degrades to
// demo mode when APIKey or BusinessID is empty.
type Wave struct {
	GraphQLURL      string `env:"WAVE_GRAPHQL_URL" envDefault:"https://gql.waveapps.com/graphql/public"`
	APIKey          string `env:"WAVE_API_KEY"`
	BusinessID      string `env:"WAVE_BUSINESS_ID"`
	Currency        string `env:"WAVE_CURRENCY" envDefault:"USD"`
	ProductID       string `env:"WAVE_PRODUCT_ID"`
	ProductIDs      map[string]string
	IncomeAccountID string `env:"WAVE_INCOME_ACCOUNT_ID"`

	ProductIDEssential string `env:"WAVE_PRODUCT_ID_ESSENTIAL"`
	ProductIDSignature string `env:"WAVE_PRODUCT_ID_SIGNATURE"`
	ProductIDPremiere  string `env:"WAVE_PRODUCT_ID_PREMIERE"`
}

// ProductIDFor resolves the line-item product for a package: the per-package
// override wins over the generic fallback. Empty means nothing is configured.
func (w Wave) ProductIDFor(packageKey string) string {
	if id, ok := w.ProductIDs[packageKey]; ok && id != "" {
		return id
	}

	return w.ProductID
}

type GitHub struct {
	Token        string `env:"GITHUB_TOKEN"`
	Repo         string `env:"GITHUB_REPO"` // owner/name
	Branch       string `env:"GITHUB_BRANCH" envDefault:"main"`
	ContractsDir string `env:"GITHUB_CONTRACTS_DIR" envDefault:"contracts"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"invoice.events"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Studio Billing"`
	To       string `env:"MAILER_TO"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	c.Wave.ProductIDs = map[string]string{
		"essential": c.Wave.ProductIDEssential,
		"signature": c.Wave.ProductIDSignature,
		"premiere":  c.Wave.ProductIDPremiere,
	}

	return c, nil
}
