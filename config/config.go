package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL        string        `mapstructure:"API_BASE_URL"`
	AppPort           string        `mapstructure:"APP_PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int           `mapstructure:"MAX_REQUESTS_PER_MIN"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// Durable session storage.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	StoragePath   string `mapstructure:"STORAGE_PATH"`
	StorageKey    string `mapstructure:"STORAGE_KEY"`

	// Redis configuration, used when STORAGE_DRIVER=redis.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Appointment reminders, queued in Redis.
	RemindersEnabled     bool          `mapstructure:"REMINDERS_ENABLED"`
	RedisReminderQueueDB int           `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
	ReminderLeadTime     time.Duration `mapstructure:"REMINDER_LEAD_TIME"`

	HealthCheckInterval time.Duration `mapstructure:"HEALTH_CHECK_INTERVAL"`
}

var AppConfig Config

// Flags returns the command-line overrides understood by LoadConfig.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("medicare", pflag.ContinueOnError)
	fs.String("api-base-url", "", "backend API base URL")
	fs.String("port", "", "console listen port")
	fs.String("storage-driver", "", "session storage driver: memory, file or redis")
	fs.String("storage-path", "", "session file path for the file driver")
	fs.String("log-level", "", "log level")
	fs.Bool("reminders", false, "queue appointment reminders in Redis")
	return fs
}

var flagKeys = map[string]string{
	"api-base-url":   "API_BASE_URL",
	"port":           "APP_PORT",
	"storage-driver": "STORAGE_DRIVER",
	"storage-path":   "STORAGE_PATH",
	"log-level":      "LOG_LEVEL",
	"reminders":      "REMINDERS_ENABLED",
}

// LoadConfig fills AppConfig from defaults, an optional .env file, an optional
// config.yaml, the environment and finally any flags that were set.
func LoadConfig(fs *pflag.FlagSet) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, skipping")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if fs != nil {
		fs.VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok && f.Changed {
				_ = v.BindPFlag(key, f)
			}
		})
	}

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := decode(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_BASE_URL", "http://localhost:8000/api/v1")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 0)
	v.SetDefault("REQUEST_TIMEOUT", "0s")
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("STORAGE_PATH", ".medicare/session.json")
	v.SetDefault("STORAGE_KEY", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REMINDERS_ENABLED", false)
	v.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	v.SetDefault("REMINDER_LEAD_TIME", "24h")
	v.SetDefault("HEALTH_CHECK_INTERVAL", "60s")
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	cfg.StorageDriver = strings.ToLower(cfg.StorageDriver)
	return cfg, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
