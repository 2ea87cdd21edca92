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
	Batch   BatchConfig
	Storage StorageConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// BatchConfig holds batch processing settings.
type BatchConfig struct {
	Adapter      string `mapstructure:"adapter"`
	MaxDocuments int    `mapstructure:"max_documents"`
	Concurrency  int    `mapstructure:"concurrency"`
}

// StorageConfig holds on-disk working directory settings.
type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	WorkDir     string `mapstructure:"work_dir"`
	ArtifactDir string `mapstructure:"artifact_dir"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the NTF_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NTF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Batch defaults; concurrency 0 means one worker per CPU
	v.SetDefault("batch.adapter", "natif")
	v.SetDefault("batch.max_documents", 100)
	v.SetDefault("batch.concurrency", 0)

	// Storage defaults
	v.SetDefault("storage.upload_dir", "uploads")
	v.SetDefault("storage.work_dir", "work")
	v.SetDefault("storage.artifact_dir", "artifacts")

	// CORS defaults
	v.SetDefault("cors.allowed_origins", "*")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "NTF_SERVER_PORT",
		"server.read_timeout":  "NTF_SERVER_READ_TIMEOUT",
		"server.write_timeout": "NTF_SERVER_WRITE_TIMEOUT",
		"server.environment":   "NTF_SERVER_ENVIRONMENT",
		"batch.adapter":        "NTF_BATCH_ADAPTER",
		"batch.max_documents":  "NTF_BATCH_MAX_DOCUMENTS",
		"batch.concurrency":    "NTF_BATCH_CONCURRENCY",
		"storage.upload_dir":   "NTF_STORAGE_UPLOAD_DIR",
		"storage.work_dir":     "NTF_STORAGE_WORK_DIR",
		"storage.artifact_dir": "NTF_STORAGE_ARTIFACT_DIR",
		"cors.allowed_origins": "NTF_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if NTF_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("NTF_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Batch = BatchConfig{
		Adapter:      v.GetString("batch.adapter"),
		MaxDocuments: v.GetInt("batch.max_documents"),
		Concurrency:  v.GetInt("batch.concurrency"),
	}
	cfg.Storage = StorageConfig{
		UploadDir:   v.GetString("storage.upload_dir"),
		WorkDir:     v.GetString("storage.work_dir"),
		ArtifactDir: v.GetString("storage.artifact_dir"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
