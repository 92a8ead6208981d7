package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (EmailJS credentials, secrets)
// - default: Values common across all environments (timeouts, anti-spam windows, etc.)
// -----------------------------------------------------------------------------

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	DB       DBConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	EmailJS  EmailJSConfig
	AntiSpam AntiSpamConfig
	Session  SessionConfig
	Cookie   CookieConfig
	Throttle ThrottleConfig
}

type AppConfig struct {
	// production unless told otherwise so provider errors never leak by accident
	Env string `envconfig:"APP_ENV" default:"production"`
}

func (c AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	// CIDRs or IPs whose X-Forwarded-For is honoured; empty trusts no proxy
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type StoreConfig struct {
	Driver        string        `envconfig:"STORE_DRIVER" default:"memory"`
	TTL           time.Duration `envconfig:"STORE_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"STORE_SWEEP_INTERVAL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	File           string `envconfig:"LOG_FILE"`
	MaxSizeMB      int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups     int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
	MaxAgeDays     int    `envconfig:"LOG_MAX_AGE_DAYS" default:"7"`
}

type EmailJSConfig struct {
	ServiceID         string        `envconfig:"EMAILJS_SERVICE_ID" required:"true"`
	TemplateIDBooking string        `envconfig:"EMAILJS_TEMPLATE_ID_BOOKING" required:"true"`
	TemplateIDContact string        `envconfig:"EMAILJS_TEMPLATE_ID_CONTACT" required:"true"`
	PublicKey         string        `envconfig:"EMAILJS_PUBLIC_KEY" required:"true"`
	PrivateKey        string        `envconfig:"EMAILJS_PRIVATE_KEY"`
	Endpoint          string        `envconfig:"EMAILJS_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
	RecipientLabel    string        `envconfig:"EMAILJS_RECIPIENT_LABEL" default:"AsanaSurf Team"`
	Timeout           time.Duration `envconfig:"EMAILJS_TIMEOUT" default:"10s"`
}

type AntiSpamConfig struct {
	RateLimitWindow time.Duration `envconfig:"ANTISPAM_RATE_LIMIT_WINDOW" default:"30s"`
	MinFillTime     time.Duration `envconfig:"ANTISPAM_MIN_FILL_TIME" default:"2s"`
}

type SessionConfig struct {
	Secret   string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration time.Duration `envconfig:"SESSION_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type ThrottleConfig struct {
	RPS        float64 `envconfig:"THROTTLE_RPS" default:"1"`
	Burst      int     `envconfig:"THROTTLE_BURST" default:"5"`
	StartRPS   float64 `envconfig:"THROTTLE_START_RPS" default:"1"`
	StartBurst int     `envconfig:"THROTTLE_START_BURST" default:"10"`
}

// FormStart is the bucket applied to form-start requests, kept apart from submissions.
func (c ThrottleConfig) FormStart() ThrottleConfig {
	return ThrottleConfig{RPS: c.StartRPS, Burst: c.StartBurst}
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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

// Validate reports settings that envconfig tags alone cannot express.
func (c Config) Validate() error {
	// envconfig's required only checks presence; a blank value must not boot
	var empty []string
	for _, setting := range []struct{ key, value string }{
		{"EMAILJS_SERVICE_ID", c.EmailJS.ServiceID},
		{"EMAILJS_TEMPLATE_ID_BOOKING", c.EmailJS.TemplateIDBooking},
		{"EMAILJS_TEMPLATE_ID_CONTACT", c.EmailJS.TemplateIDContact},
		{"EMAILJS_PUBLIC_KEY", c.EmailJS.PublicKey},
		{"SESSION_SECRET", c.Session.Secret},
	} {
		if strings.TrimSpace(setting.value) == "" {
			empty = append(empty, setting.key)
		}
	}
	if len(empty) > 0 {
		return fmt.Errorf("required settings are empty: %s", strings.Join(empty, ", "))
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		var missing []string
		if c.DB.User == "" {
			missing = append(missing, "DB_USER")
		}
		if c.DB.Password == "" {
			missing = append(missing, "DB_PASSWORD")
		}
		if c.DB.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("STORE_DRIVER=postgres requires %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.EmailJS.Timeout <= 0 {
		return errors.New("EMAILJS_TIMEOUT must be positive")
	}
	if c.AntiSpam.RateLimitWindow < 0 || c.AntiSpam.MinFillTime < 0 {
		return errors.New("anti-spam windows must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Env: EnvDevelopment,
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Store: StoreConfig{
			Driver:        StoreDriverMemory,
			TTL:           24 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		EmailJS: EmailJSConfig{
			ServiceID:         "service_test",
			TemplateIDBooking: "template_booking",
			TemplateIDContact: "template_contact",
			PublicKey:         "public_test",
			Endpoint:          "http://127.0.0.1:0/api/v1.0/email/send",
			RecipientLabel:    "AsanaSurf Team",
			Timeout:           2 * time.Second,
		},
		AntiSpam: AntiSpamConfig{
			RateLimitWindow: 30 * time.Second,
			MinFillTime:     2 * time.Second,
		},
		Session: SessionConfig{
			Secret:   "test-session-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Throttle: ThrottleConfig{
			RPS:        100,
			Burst:      100,
			StartRPS:   100,
			StartBurst: 100,
		},
	}
}
