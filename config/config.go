package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Ollama   OllamaConfig   `mapstructure:"ollama"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Tts      TtsConfig      `mapstructure:"tts"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AuthConfig struct {
	SessionSecret string `mapstructure:"session_secret"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LLM provider selection
type LLMConfig struct {
	Provider string `mapstructure:"provider"` // "ollama" or "openai"
}

type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`   // Optional, defaults to OpenAI API
	MaxTokens int    `mapstructure:"max_tokens"` // Optional, defaults to model's max
	Timeout   int    `mapstructure:"timeout"`
}

type OllamaConfig struct {
	Host    string `mapstructure:"host"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

type TtsConfig struct {
	Type    string `mapstructure:"type"`
	Enabled bool   `mapstructure:"enabled"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.BindEnv("openai.api_key", "GABE_OPENAI_API_KEY")
	viper.BindEnv("openai.model", "OPENAI_MODEL")
	viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	viper.BindEnv("llm.provider", "LLM_PROVIDER")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("auth.session_secret", "gabe-spiritual-companion-2024")
	viper.SetDefault("database.path", "./gabe.db")

	viper.SetDefault("ollama.host", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.2")
	viper.SetDefault("ollama.timeout", 30)

	viper.SetDefault("openai.timeout", 30)
	viper.SetDefault("openai.max_tokens", 1000)

	viper.SetDefault("llm.provider", "ollama")

	viper.SetDefault("tts.enabled", false)
	viper.SetDefault("tts.type", "dummy")

	// Allow environment variables
	viper.SetEnvPrefix("GABE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found, use defaults
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
