package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Upload UploadConfig `mapstructure:"upload" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// UploadConfig bounds what a client may upload and request.
type UploadConfig struct {
	MaxFileSizeBytes int64 `mapstructure:"max_file_size_bytes" validate:"gt=0"`
	DefaultNumCards  int   `mapstructure:"default_num_cards"   validate:"gtefield=MinNumCards,ltefield=MaxNumCards"`
	MinNumCards      int   `mapstructure:"min_num_cards"       validate:"gte=1"`
	MaxNumCards      int   `mapstructure:"max_num_cards"       validate:"gtefield=MinNumCards"`
}

// LLMConfig contains all LLM integration related settings.
// An empty GeminiAPIKey is valid: the service then serves mock flashcards.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	PromptTemplatePath    string `mapstructure:"prompt_template_path"    validate:"omitempty,file"`
	MaxInputChars         int    `mapstructure:"max_input_chars"         validate:"gt=0"`
	MaxRetries            int    `mapstructure:"max_retries"             validate:"gte=0,lte=10"`
	RetryDelaySeconds     int    `mapstructure:"retry_delay_seconds"     validate:"gte=0"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// Configured reports whether an API key is present.
func (c LLMConfig) Configured() bool {
	return c.GeminiAPIKey != ""
}

// RequestTimeout returns the per-call timeout for model requests.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// RetryDelay returns the base delay between retries.
func (c LLMConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySeconds) * time.Second
}
