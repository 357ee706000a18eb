package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Parser ParserConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ParserConfig tunes the statement pipeline. MinTextLength is the stripped
// native-text length below which the document is treated as scanned and
// pages are rasterized for OCR.
type ParserConfig struct {
	MinTextLength int
	OCRDPI        int
	OCRLanguage   string
	TmpDir        string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; environment variables alone are enough for Docker/K8s.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "60"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "60"))
	minTextLength, _ := strconv.Atoi(getEnv("PARSER_MIN_TEXT_LENGTH", "300"))
	ocrDPI, _ := strconv.Atoi(getEnv("PARSER_OCR_DPI", "200"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Parser: ParserConfig{
			MinTextLength: minTextLength,
			OCRDPI:        ocrDPI,
			OCRLanguage:   getEnv("PARSER_OCR_LANG", "eng"),
			TmpDir:        getEnv("PARSER_TMP_DIR", "tmp"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
