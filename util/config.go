package util

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

type Config struct {
	Port           string   `validate:"required,number"`
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// LoadConfig reads configuration from the environment (and a .env file if
// one exists). ALLOWED_ORIGINS is a comma-separated list of origins allowed
// to reach both the HTTP endpoints and the websocket upgrade.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port: os.Getenv("PORT"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = lo.Map(strings.Split(origins, ","), func(origin string, _ int) string {
			return strings.TrimSpace(origin)
		})
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
