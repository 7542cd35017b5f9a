package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string

	// Kafka
	KafkaBrokers string

	// API Configuration
	APIPort string
	APIHost string

	// Public base URL of this site (product URLs, uploaded media)
	SiteURL string

	// Designer front-end
	DesignerOrigin string
	DesignerAppURL string

	// Media storage
	UploadDir string
	AssetsDir string

	// Attribute taxonomies (must match the catalog's attribute slugs)
	ColorTaxonomy string
	SizeTaxonomy  string

	// Fallback color when a product carries no default selection
	DefaultColorSlug string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", "sqlite://arton360.db"),
		KafkaBrokers:     getEnv("KAFKA_BROKERS", ""),
		APIPort:          getEnv("API_PORT", "8080"),
		APIHost:          getEnv("API_HOST", "0.0.0.0"),
		SiteURL:          getEnv("SITE_URL", "http://localhost:8080"),
		DesignerOrigin:   getEnv("DESIGNER_ORIGIN", "https://arton360-designer-i756.vercel.app"),
		DesignerAppURL:   getEnv("DESIGNER_APP_URL", "https://arton360-designer-i756.vercel.app/"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		AssetsDir:        getEnv("ASSETS_DIR", "assets"),
		ColorTaxonomy:    getEnv("COLOR_TAXONOMY", "pa_color"),
		SizeTaxonomy:     getEnv("SIZE_TAXONOMY", "pa_size"),
		DefaultColorSlug: getEnv("DEFAULT_COLOR_SLUG", "white"),
		Env:              getEnv("ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}, nil
}

// ColorImageMap maps a color slug to the base garment image served from
// this site. Built once at startup instead of being read as ambient state.
func (c *Config) ColorImageMap() map[string]string {
	base := c.SiteURL + "/assets/tshirts/"

	return map[string]string{
		"white": base + "white.png",
		"black": base + "black.png",
		"red":   base + "red.png",
		"gray":  base + "gray.png",
		"navy":  base + "navy.png",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
