package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	Version     string           `json:"version"`
	CORSOrigins []string         `json:"cors_origins"`
	LogConfig   logger.LogConfig `json:"log_config"`
	Upload      UploadConfig     `json:"upload"`
	AWS         AWSConfig        `json:"aws"`
	TextGen     TextGenConfig    `json:"textgen"`
	Image       ImageConfig      `json:"image"`
	Speech      SpeechConfig     `json:"speech"`
}

type UploadConfig struct {
	MaxBytes          int64    `json:"max_bytes"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// AWSConfig carries only the region; credentials come from the environment.
type AWSConfig struct {
	Region string `json:"region"`
}

type TextGenConfig struct {
	Provider        string      `json:"provider"`
	Model           string      `json:"model"`
	Data            interface{} `json:"data"`
	MaxOutputTokens int         `json:"max_output_tokens"`
	Timeout         int         `json:"timeout"`
}

type ImageConfig struct {
	ModelID string `json:"model_id"`
}

type SpeechConfig struct {
	Voice string `json:"voice"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.Upload.MaxBytes == 0 {
		cfg.Upload.MaxBytes = 25 * 1024 * 1024
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}
	}
	for i, ext := range cfg.Upload.AllowedExtensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		cfg.Upload.AllowedExtensions[i] = normalized
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = os.Getenv("AWS_REGION")
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.TextGen.Provider == "" {
		return nil, fmt.Errorf("textgen.provider is required")
	}
	if cfg.TextGen.Model == "" {
		return nil, fmt.Errorf("textgen.model is required")
	}
	if cfg.TextGen.MaxOutputTokens == 0 {
		cfg.TextGen.MaxOutputTokens = 1024
	}
	if cfg.TextGen.Timeout == 0 {
		cfg.TextGen.Timeout = 60
	}
	if cfg.Image.ModelID == "" {
		cfg.Image.ModelID = "amazon.titan-image-generator-v1"
	}
	if cfg.Speech.Voice == "" {
		cfg.Speech.Voice = "Joanna"
	}
	return &cfg, nil
}
