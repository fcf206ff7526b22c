package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	OCR     OCRConfig
	Upload  UploadConfig
	Extract ExtractConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds the embedded SQLite settings.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// OCRConfig holds the Tesseract server settings.
type OCRConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	// Languages is a comma-separated list of language specs tried per
	// image, e.g. "eng,fra,eng+fra".
	Languages string `mapstructure:"languages"`
}

// LanguageAttempts splits Languages into the ordered attempt list.
func (o *OCRConfig) LanguageAttempts() []string {
	var out []string
	for _, l := range strings.Split(o.Languages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ExtractConfig holds catalog matching thresholds.
type ExtractConfig struct {
	MatchThreshold float64 `mapstructure:"match_threshold"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the FACTURO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FACTURO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.path", "facturo.db")

	// OCR defaults
	v.SetDefault("ocr.endpoint", "http://localhost:8884/tesseract")
	v.SetDefault("ocr.timeout_secs", 60)
	v.SetDefault("ocr.languages", "eng,fra,eng+fra")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Extract defaults
	v.SetDefault("extract.match_threshold", 0.7)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:4200,http://127.0.0.1:4200")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FACTURO_SERVER_PORT",
		"server.read_timeout":      "FACTURO_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FACTURO_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FACTURO_SERVER_ENVIRONMENT",
		"db.path":                  "FACTURO_DB_PATH",
		"ocr.endpoint":             "FACTURO_OCR_ENDPOINT",
		"ocr.timeout_secs":         "FACTURO_OCR_TIMEOUT_SECS",
		"ocr.languages":            "FACTURO_OCR_LANGUAGES",
		"upload.max_file_size_mb":  "FACTURO_UPLOAD_MAX_FILE_SIZE_MB",
		"extract.match_threshold":  "FACTURO_EXTRACT_MATCH_THRESHOLD",
		"cors.allowed_origins":     "FACTURO_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FACTURO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FACTURO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Path: v.GetString("db.path"),
	}
	cfg.OCR = OCRConfig{
		Endpoint:    v.GetString("ocr.endpoint"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
		Languages:   v.GetString("ocr.languages"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Extract = ExtractConfig{
		MatchThreshold: v.GetFloat64("extract.match_threshold"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitCSV(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
