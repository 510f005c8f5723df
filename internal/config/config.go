package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	S3       S3Config
	OCR      OCRConfig
	Vision   VisionConfig
	OnDevice OnDeviceConfig
	Pipeline PipelineConfig
	Airports AirportsConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the usage-statistics store.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for fetching boarding-pass images.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	ArchiveOnWin  bool   `mapstructure:"archive_on_win"`
}

// OCRConfig holds settings for the local text-recognition engine.
type OCRConfig struct {
	Binary        string  `mapstructure:"binary"`
	DataDir       string  `mapstructure:"data_dir"`
	TimeoutSecs   int     `mapstructure:"timeout_secs"`
	MinConfidence float64 `mapstructure:"min_confidence"`
}

// VisionConfig holds settings for the remote vision-language collaborator.
type VisionConfig struct {
	Endpoint        string  `mapstructure:"endpoint"`
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	TimeoutSecs     int     `mapstructure:"timeout_secs"`
	CostPer1KTokens float64 `mapstructure:"cost_per_1k_tokens"`
}

// OnDeviceConfig holds settings for the local language-model collaborator.
type OnDeviceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// PipelineConfig holds fallback-chain settings.
type PipelineConfig struct {
	RetryPauseMS int  `mapstructure:"retry_pause_ms"`
	StatsBuffer  int  `mapstructure:"stats_buffer"`
	StatsEnabled bool `mapstructure:"stats_enabled"`
}

// AirportsConfig holds the optional city/code table override.
type AirportsConfig struct {
	File string `mapstructure:"file"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the PAXSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PAXSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "paxscan")
	v.SetDefault("db.password", "paxscan_secret")
	v.SetDefault("db.name", "paxscan_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "paxscan-passes")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.archive_on_win", false)

	// OCR defaults
	v.SetDefault("ocr.binary", "tesseract")
	v.SetDefault("ocr.data_dir", "")
	v.SetDefault("ocr.timeout_secs", 30)
	v.SetDefault("ocr.min_confidence", 0.3)

	// Vision defaults
	v.SetDefault("vision.endpoint", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.model", "gpt-4o")
	v.SetDefault("vision.timeout_secs", 120)
	v.SetDefault("vision.cost_per_1k_tokens", 0.005)

	// On-device defaults
	v.SetDefault("ondevice.endpoint", "http://localhost:11434/api/generate")
	v.SetDefault("ondevice.model", "llama3.2")
	v.SetDefault("ondevice.timeout_secs", 60)

	// Pipeline defaults
	v.SetDefault("pipeline.retry_pause_ms", 500)
	v.SetDefault("pipeline.stats_buffer", 256)
	v.SetDefault("pipeline.stats_enabled", true)

	// Airports defaults
	v.SetDefault("airports.file", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "PAXSCAN_SERVER_PORT",
		"server.read_timeout":        "PAXSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "PAXSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":         "PAXSCAN_SERVER_ENVIRONMENT",
		"db.host":                    "PAXSCAN_DB_HOST",
		"db.port":                    "PAXSCAN_DB_PORT",
		"db.user":                    "PAXSCAN_DB_USER",
		"db.password":                "PAXSCAN_DB_PASSWORD",
		"db.name":                    "PAXSCAN_DB_NAME",
		"db.sslmode":                 "PAXSCAN_DB_SSLMODE",
		"db.max_open":                "PAXSCAN_DB_MAX_OPEN",
		"db.max_idle":                "PAXSCAN_DB_MAX_IDLE",
		"s3.region":                  "PAXSCAN_S3_REGION",
		"s3.bucket":                  "PAXSCAN_S3_BUCKET",
		"s3.endpoint":                "PAXSCAN_S3_ENDPOINT",
		"s3.access_key":              "PAXSCAN_S3_ACCESS_KEY",
		"s3.secret_key":              "PAXSCAN_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "PAXSCAN_S3_MAX_FILE_SIZE_MB",
		"s3.archive_on_win":          "PAXSCAN_S3_ARCHIVE_ON_WIN",
		"ocr.binary":                 "PAXSCAN_OCR_BINARY",
		"ocr.data_dir":               "PAXSCAN_OCR_DATA_DIR",
		"ocr.timeout_secs":           "PAXSCAN_OCR_TIMEOUT_SECS",
		"ocr.min_confidence":         "PAXSCAN_OCR_MIN_CONFIDENCE",
		"vision.endpoint":            "PAXSCAN_VISION_ENDPOINT",
		"vision.api_key":             "PAXSCAN_VISION_API_KEY",
		"vision.model":               "PAXSCAN_VISION_MODEL",
		"vision.timeout_secs":        "PAXSCAN_VISION_TIMEOUT_SECS",
		"vision.cost_per_1k_tokens":  "PAXSCAN_VISION_COST_PER_1K_TOKENS",
		"ondevice.endpoint":          "PAXSCAN_ONDEVICE_ENDPOINT",
		"ondevice.model":             "PAXSCAN_ONDEVICE_MODEL",
		"ondevice.timeout_secs":      "PAXSCAN_ONDEVICE_TIMEOUT_SECS",
		"pipeline.retry_pause_ms":    "PAXSCAN_PIPELINE_RETRY_PAUSE_MS",
		"pipeline.stats_buffer":      "PAXSCAN_PIPELINE_STATS_BUFFER",
		"pipeline.stats_enabled":     "PAXSCAN_PIPELINE_STATS_ENABLED",
		"airports.file":              "PAXSCAN_AIRPORTS_FILE",
		"cors.allowed_origins":       "PAXSCAN_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PAXSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PAXSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		ArchiveOnWin:  v.GetBool("s3.archive_on_win"),
	}
	cfg.OCR = OCRConfig{
		Binary:        v.GetString("ocr.binary"),
		DataDir:       v.GetString("ocr.data_dir"),
		TimeoutSecs:   v.GetInt("ocr.timeout_secs"),
		MinConfidence: v.GetFloat64("ocr.min_confidence"),
	}
	cfg.Vision = VisionConfig{
		Endpoint:        v.GetString("vision.endpoint"),
		APIKey:          v.GetString("vision.api_key"),
		Model:           v.GetString("vision.model"),
		TimeoutSecs:     v.GetInt("vision.timeout_secs"),
		CostPer1KTokens: v.GetFloat64("vision.cost_per_1k_tokens"),
	}
	cfg.OnDevice = OnDeviceConfig{
		Endpoint:    v.GetString("ondevice.endpoint"),
		Model:       v.GetString("ondevice.model"),
		TimeoutSecs: v.GetInt("ondevice.timeout_secs"),
	}
	cfg.Pipeline = PipelineConfig{
		RetryPauseMS: v.GetInt("pipeline.retry_pause_ms"),
		StatsBuffer:  v.GetInt("pipeline.stats_buffer"),
		StatsEnabled: v.GetBool("pipeline.stats_enabled"),
	}
	cfg.Airports = AirportsConfig{
		File: v.GetString("airports.file"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
