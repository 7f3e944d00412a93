package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	GitHub       GitHubConfig
	AI           AIConfig
	Contentstack ContentstackConfig
	Launch       LaunchConfig
	Portfolio    PortfolioConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	Token string
}

type AIConfig struct {
	Provider     string
	GroqAPIKey   string
	GroqModel    string
	OpenAIAPIKey string
	OpenAIModel  string
}

type ContentstackConfig struct {
	APIKey          string
	DeliveryToken   string
	ManagementToken string
	ContentType     string
	Environment     string
	Region          string
	Branch          string
}

type LaunchConfig struct {
	ProjectID     string
	APIEndpoint   string
	Token         string
	WebhookURL    string
	WebhookSecret string
	PollAttempts  int
	PollInterval  int
}

type PortfolioConfig struct {
	BaseURL string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 120),
		},
		GitHub: GitHubConfig{
			Token: getEnv("GITHUB_TOKEN", ""),
		},
		AI: AIConfig{
			Provider:     getEnv("AI_PROVIDER", "groq"),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GroqModel:    getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
		},
		Contentstack: ContentstackConfig{
			APIKey:          getEnv("CONTENTSTACK_API_KEY", ""),
			DeliveryToken:   getEnv("CONTENTSTACK_DELIVERY_TOKEN", ""),
			ManagementToken: getEnv("CONTENTSTACK_MANAGEMENT_TOKEN", ""),
			ContentType:     getEnv("CONTENTSTACK_CONTENT_TYPE", "portfolio"),
			Environment:     getEnv("CONTENTSTACK_ENVIRONMENT", "development"),
			Region:          getEnv("CONTENTSTACK_REGION", "us"),
			Branch:          getEnv("CONTENTSTACK_BRANCH", "main"),
		},
		Launch: LaunchConfig{
			ProjectID:     getEnv("CONTENTSTACK_LAUNCH_PROJECT_ID", ""),
			APIEndpoint:   getEnv("CONTENTSTACK_LAUNCH_API_ENDPOINT", "https://launch-api.contentstack.com"),
			Token:         getEnv("CONTENTSTACK_LAUNCH_TOKEN", ""),
			WebhookURL:    getEnv("DEPLOYMENT_WEBHOOK_URL", ""),
			WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
			PollAttempts:  getEnvAsInt("DEPLOYMENT_POLL_ATTEMPTS", 30),
			PollInterval:  getEnvAsInt("DEPLOYMENT_POLL_INTERVAL", 10),
		},
		Portfolio: PortfolioConfig{
			BaseURL: getEnv("PORTFOLIO_BASE_URL", "https://portfolios.contentstack.app"),
		},
	}

	return nil
}

// APIEndpoint returns the region-specific Management API endpoint
func (c ContentstackConfig) APIEndpoint() string {
	endpoints := map[string]string{
		"us":       "https://api.contentstack.io",
		"eu":       "https://eu-api.contentstack.com",
		"azure-na": "https://azure-na-api.contentstack.com",
		"azure-eu": "https://azure-eu-api.contentstack.com",
	}
	if endpoint, ok := endpoints[c.Region]; ok {
		return endpoint
	}
	return endpoints["us"]
}

// CDNEndpoint returns the region-specific Delivery API endpoint
func (c ContentstackConfig) CDNEndpoint() string {
	endpoints := map[string]string{
		"us":       "https://cdn.contentstack.io",
		"eu":       "https://eu-cdn.contentstack.com",
		"azure-na": "https://azure-na-cdn.contentstack.com",
		"azure-eu": "https://azure-eu-cdn.contentstack.com",
	}
	if endpoint, ok := endpoints[c.Region]; ok {
		return endpoint
	}
	return endpoints["us"]
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
