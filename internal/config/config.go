package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Stripe struct {
		SecretKey      string `yaml:"secret_key"`
		WebhookSecret  string `yaml:"webhook_secret"`
		PremiumPriceID string `yaml:"premium_price_id"`
		SuccessURL     string `yaml:"success_url"`
		CancelURL      string `yaml:"cancel_url"`
	} `yaml:"stripe"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables when
// DATABASE_URL is set (tests and container deploys). A .env file, if
// present, is loaded first.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	cfg.JWT.TTL = 60
	if ttl, err := strconv.Atoi(os.Getenv("JWT_TTL_MINUTES")); err == nil && ttl > 0 {
		cfg.JWT.TTL = ttl
	}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.PremiumPriceID = os.Getenv("STRIPE_PREMIUM_PRICE_ID")
	cfg.Stripe.SuccessURL = os.Getenv("STRIPE_SUCCESS_URL")
	cfg.Stripe.CancelURL = os.Getenv("STRIPE_CANCEL_URL")

	if cfg.Stripe.SecretKey != "" && (cfg.Stripe.SuccessURL == "" || cfg.Stripe.CancelURL == "") {
		log.Println("Stripe is configured but STRIPE_SUCCESS_URL/STRIPE_CANCEL_URL are not set; checkout sessions would redirect nowhere")
	}

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
