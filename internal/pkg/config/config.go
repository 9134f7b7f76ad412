package config

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, secrets)
// - default: Values common across all environments (window, intervals, retry policy)
// - validate: Cross-field and range rules checked after envconfig has run
// -----------------------------------------------------------------------------

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	MailDriverSMTP = "smtp"
	MailDriverLog  = "log"

	windowLayout = "15:04"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Admin     AdminConfig
	Scheduler SchedulerConfig
	Worker    WorkerConfig
	Mail      MailConfig
	Digest    DigestConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" validate:"required_if=Driver postgres"`
	Password   string `envconfig:"DB_PASSWORD" validate:"required_if=Driver postgres"`
	DBName     string `envconfig:"DB_NAME" validate:"required_if=Driver postgres"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone   string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns   int32  `envconfig:"DB_MAX_CONNS" default:"10" validate:"min=1"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"firm-digest.db" validate:"required_if=Driver sqlite"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type AdminConfig struct {
	APIEnabled    bool          `envconfig:"ADMIN_API_ENABLED" default:"true"`
	JWTSecret     string        `envconfig:"ADMIN_JWT_SECRET" required:"true" validate:"min=16"`
	TokenDuration time.Duration `envconfig:"ADMIN_TOKEN_DURATION" default:"24h" validate:"gt=0"`
}

type SchedulerConfig struct {
	Enabled         bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Cron            string `envconfig:"SCHEDULER_CRON" default:"*/15 * * * *"`
	WindowStart     string `envconfig:"SCHEDULER_WINDOW_START" default:"18:30"`
	WindowEnd       string `envconfig:"SCHEDULER_WINDOW_END" default:"19:00"`
	DefaultTimeZone string `envconfig:"SCHEDULER_DEFAULT_TIMEZONE" default:"Asia/Kolkata"`
	Concurrency     int    `envconfig:"SCHEDULER_CONCURRENCY" default:"4" validate:"min=1,max=64"`
}

type WorkerConfig struct {
	Enabled         bool          `envconfig:"WORKER_ENABLED" default:"true"`
	PollInterval    time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"30s" validate:"gt=0"`
	BatchSize       int           `envconfig:"WORKER_BATCH_SIZE" default:"50" validate:"min=1,max=1000"`
	Concurrency     int           `envconfig:"WORKER_CONCURRENCY" default:"4" validate:"min=1,max=64"`
	MaxAttempts     int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"3" validate:"min=1"`
	RetryBackoff    time.Duration `envconfig:"WORKER_RETRY_BACKOFF" default:"10m" validate:"gte=0"`
	RetryBackoffMax time.Duration `envconfig:"WORKER_RETRY_BACKOFF_MAX" default:"6h" validate:"gtefield=RetryBackoff"`
	ClaimLease      time.Duration `envconfig:"WORKER_CLAIM_LEASE" default:"15m" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"WORKER_SHUTDOWN_TIMEOUT" default:"30s" validate:"gt=0"`
}

type MailConfig struct {
	Driver       string        `envconfig:"MAIL_DRIVER" default:"log" validate:"oneof=smtp log"`
	From         string        `envconfig:"MAIL_FROM" validate:"required_if=Driver smtp,omitempty,email"`
	SMTPHost     string        `envconfig:"SMTP_HOST" validate:"required_if=Driver smtp"`
	SMTPPort     int           `envconfig:"SMTP_PORT" default:"587" validate:"min=1,max=65535"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPTimeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"10s" validate:"gt=0"`
}

type DigestConfig struct {
	AppBaseURL string `envconfig:"DIGEST_APP_BASE_URL" validate:"omitempty,url"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configuration the processes cannot run with.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.Scheduler.DefaultTimeZone); err != nil {
		return fmt.Errorf("invalid SCHEDULER_DEFAULT_TIMEZONE %q: %w", c.Scheduler.DefaultTimeZone, err)
	}
	if !gronx.IsValid(c.Scheduler.Cron) {
		return fmt.Errorf("invalid SCHEDULER_CRON %q", c.Scheduler.Cron)
	}
	if _, err := time.Parse(windowLayout, c.Scheduler.WindowStart); err != nil {
		return fmt.Errorf("invalid SCHEDULER_WINDOW_START %q: %w", c.Scheduler.WindowStart, err)
	}
	if _, err := time.Parse(windowLayout, c.Scheduler.WindowEnd); err != nil {
		return fmt.Errorf("invalid SCHEDULER_WINDOW_END %q: %w", c.Scheduler.WindowEnd, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Admin: AdminConfig{
			APIEnabled:    true,
			JWTSecret:     "test-admin-secret-0123456789",
			TokenDuration: time.Hour,
		},
		Scheduler: SchedulerConfig{
			Enabled:         false,
			Cron:            "*/15 * * * *",
			WindowStart:     "18:30",
			WindowEnd:       "19:00",
			DefaultTimeZone: "Asia/Kolkata",
			Concurrency:     2,
		},
		Worker: WorkerConfig{
			Enabled:         false,
			PollInterval:    time.Second,
			BatchSize:       10,
			Concurrency:     2,
			MaxAttempts:     3,
			RetryBackoff:    10 * time.Minute,
			RetryBackoffMax: time.Hour,
			ClaimLease:      15 * time.Minute,
			ShutdownTimeout: 5 * time.Second,
		},
		Mail: MailConfig{
			Driver:      MailDriverLog,
			SMTPPort:    587,
			SMTPTimeout: time.Second,
		},
	}
}
