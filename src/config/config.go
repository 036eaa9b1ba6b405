package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	LogLevel string

	// InputDir is the root directory scanned for order exports. Empty means
	// the current working directory, resolved at run time.
	InputDir string
	// InputExtensions lists the spreadsheet extensions picked up during
	// discovery, lowercase with leading dot.
	InputExtensions []string
	// OutputPrefix names the consolidated report and excludes prior outputs
	// from rediscovery.
	OutputPrefix string
	OutputSheet  string

	// PipelineMode selects the row expansion strategy: "expand" emits one
	// record per parsed product, "flat" one record per row.
	PipelineMode string
	// SortField is the amount field the final set is sorted by, descending:
	// "price" or "total_amount".
	SortField string

	// Optional headline-price bounds. A nil bound is not applied.
	MinPrice *float64
	MaxPrice *float64
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	Cfg = &AppConfig{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		InputDir:        getEnv("INPUT_DIR", ""),
		InputExtensions: []string{".xls", ".xlsx"},
		OutputPrefix:    getEnv("OUTPUT_PREFIX", "processed_orders"),
		OutputSheet:     getEnv("OUTPUT_SHEET", "订单数据"),
		PipelineMode:    getEnv("PIPELINE_MODE", "expand"),
		SortField:       getEnv("SORT_FIELD", "price"),
		MinPrice:        getEnvAsOptionalFloat("MIN_PRICE"),
		MaxPrice:        getEnvAsOptionalFloat("MAX_PRICE"),
	}

	log.Printf("Configuration loaded: LogLevel=%s, OutputPrefix=%s, Mode=%s, SortField=%s",
		Cfg.LogLevel, Cfg.OutputPrefix, Cfg.PipelineMode, Cfg.SortField)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsOptionalFloat returns nil when the variable is unset, empty or not a
// number, so an unset price bound disables the filter instead of zeroing it.
func getEnvAsOptionalFloat(key string) *float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid float value for %s ('%s'), ignoring. Error: %v", key, valueStr, err)
		return nil
	}
	return &value
}
