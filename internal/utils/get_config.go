package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Burger API configuration
	APIBaseURL     string `yaml:"API_BASE_URL"`
	RequestTimeout string `yaml:"REQUEST_TIMEOUT"`

	// Credential persistence
	RefreshTokenFile string `yaml:"REFRESH_TOKEN_FILE"`

	// Logging
	LogDir string `yaml:"LOG_DIR"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Mirror the values into the environment so packages that read
	// os.Getenv see the same configuration.
	os.Setenv("API_BASE_URL", config.APIBaseURL)
	os.Setenv("REQUEST_TIMEOUT", config.RequestTimeout)
	os.Setenv("REFRESH_TOKEN_FILE", config.RefreshTokenFile)
	os.Setenv("LOG_DIR", config.LogDir)
}

func GetConfig(key string) string {
	switch key {
	case "API_BASE_URL":
		if config.APIBaseURL == "" {
			return "https://norma.nomoreparties.space/api"
		}
		return config.APIBaseURL
	case "REQUEST_TIMEOUT":
		return config.RequestTimeout
	case "REFRESH_TOKEN_FILE":
		if config.RefreshTokenFile == "" {
			return "./refresh_token.json"
		}
		return config.RefreshTokenFile
	case "LOG_DIR":
		if config.LogDir == "" {
			return "./logs"
		}
		return config.LogDir
	default:
		return ""
	}
}
