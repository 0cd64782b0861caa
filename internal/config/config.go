package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported LLM providers
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Document DocumentConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LLMConfig selects and configures the hosted model
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// DocumentConfig holds rendering and CLI output settings
type DocumentConfig struct {
	Author    string
	OutputDir string
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)

	v.SetDefault("llm.provider", ProviderGroq)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "llama3-70b-8192")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.timeout", 120)

	v.SetDefault("document.author", "ExamPrep Dost")
	v.SetDefault("document.output_dir", "./output")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads config.yaml (optional), the .env file (optional) and the
// environment. Environment variables use the key path upper-cased with
// dots replaced by underscores, e.g. LLM_API_KEY.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Log the config file being used
	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			APIKey:      v.GetString("llm.api_key"),
			BaseURL:     v.GetString("llm.base_url"),
			Model:       v.GetString("llm.model"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Document: DocumentConfig{
			Author:    v.GetString("document.author"),
			OutputDir: v.GetString("document.output_dir"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	// Provider specific key variables
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case ProviderGroq:
			cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		case ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if cfg.LLM.BaseURL == "" && cfg.LLM.Provider == ProviderGroq {
		cfg.LLM.BaseURL = groqBaseURL
	}

	return cfg, nil
}

// Validate reports configuration that cannot work
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("llm.base_url is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}
