package config

import "time"

// Built-in default values. Secrets (DSN, sign keys, API key) have no default.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultPasswordHashCost = 10
	DefaultTokenIssuer      = "visa-assistant"
	DefaultTokenDuration    = 30 * 24 * time.Hour
	DefaultVersion          = "dev"
	DefaultLogLevel         = "debug"

	DefaultFilesDriver    = FilesDriverLocal
	DefaultFilesPublicDir = "storage/app/public"
	DefaultFilesPublicURL = "http://localhost:8080/storage"

	DefaultAIEndpoint    = "https://openrouter.ai/api/v1/chat/completions"
	DefaultAIModel       = "openai/gpt-3.5-turbo"
	DefaultAIMaxTokens   = 500
	DefaultAITemperature = 0.4
	DefaultAITimeout     = 30 * time.Second
	DefaultAIReferer     = "http://127.0.0.1:8000"
	DefaultAITitle       = "Healthcare Visa Assistant"
)

// Supported image storage drivers.
const (
	FilesDriverLocal = "local"
	FilesDriverS3    = "s3"
)

func defaultConfig() *StructuredConfig {
	temperature := DefaultAITemperature

	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			Files: Files{
				Driver:    DefaultFilesDriver,
				PublicDir: DefaultFilesPublicDir,
				PublicURL: DefaultFilesPublicURL,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			AllowedOrigins:  []string{"*"},
		},
		AI: AI{
			Endpoint:    DefaultAIEndpoint,
			Model:       DefaultAIModel,
			MaxTokens:   DefaultAIMaxTokens,
			Temperature: &temperature,
			Timeout:     DefaultAITimeout,
			Referer:     DefaultAIReferer,
			Title:       DefaultAITitle,
		},
	}
}
