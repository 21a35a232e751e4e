package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variables:
// - required: values that differ per environment or are secrets (port, DB credentials, JWT secret)
// - default: values shared by every environment (timeouts, policy windows, token lifetimes)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	QR        QRConfig
	Cookie    CookieConfig
	Policy    PolicyConfig
	RateLimit RateLimitConfig
	Wallet    WalletConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

// MongoConfig is only read when WALLET_BACKEND=mongo.
type MongoConfig struct {
	URI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string        `envconfig:"MONGO_DATABASE" default:"cozycup"`
	Timeout  time.Duration `envconfig:"MONGO_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"KAFKA_BROKERS"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"cozycup.events"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	File           LogFileConfig
}

// LogFileConfig enables a rotating log file next to stdout when Path is set.
type LogFileConfig struct {
	Path       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14"`
	Compress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  string `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration string `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

// QRConfig holds the RS256 key material for check-in and redeem tokens.
// Keys may be empty at boot; minting or verifying then fails with SERVER_CONFIG.
type QRConfig struct {
	PrivateKeyPEM string        `envconfig:"QR_PRIVATE_KEY"`
	PublicKeyPEM  string        `envconfig:"QR_PUBLIC_KEY"`
	TTL           time.Duration `envconfig:"QR_TTL" default:"10m"`
	RedeemTTL     time.Duration `envconfig:"QR_TTL_REDEEM" default:"5m"`
	Issuer        string        `envconfig:"QR_ISSUER" default:"cozycup-qr"`
	Audience      string        `envconfig:"QR_AUDIENCE" default:"cozycup-kiosk"`
	EarlyMinutes  int           `envconfig:"QR_EARLY_MINUTES" default:"10"`
	LateMinutes   int           `envconfig:"QR_LATE_GRACE_MINUTES" default:"30"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type PolicyConfig struct {
	OrderCancelMinutes   int `envconfig:"ORDER_CANCEL_MINUTES" default:"30"`
	BookingCancelMinutes int `envconfig:"BOOKING_CANCEL_MINUTES" default:"30"`
}

type RateLimitConfig struct {
	Enabled bool   `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Rate    string `envconfig:"RATE_LIMIT" default:"100-M"`
	Prefix  string `envconfig:"RATE_LIMIT_PREFIX" default:"cozycup:ratelimit"`
}

type WalletConfig struct {
	Backend          string `envconfig:"WALLET_BACKEND" default:"postgres"`
	RedeemMaxRetries int    `envconfig:"WALLET_REDEEM_MAX_RETRIES" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (p PolicyConfig) OrderCancelWindow() time.Duration {
	return time.Duration(p.OrderCancelMinutes) * time.Minute
}

func (p PolicyConfig) BookingCancelWindow() time.Duration {
	return time.Duration(p.BookingCancelMinutes) * time.Minute
}

func (q QRConfig) EarlyWindow() time.Duration {
	return time.Duration(q.EarlyMinutes) * time.Minute
}

func (q QRConfig) LateGrace() time.Duration {
	return time.Duration(q.LateMinutes) * time.Minute
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  "15m",
			RefreshDuration: "168h",
		},
		QR: QRConfig{
			TTL:          10 * time.Minute,
			RedeemTTL:    5 * time.Minute,
			Issuer:       "cozycup-qr",
			Audience:     "cozycup-kiosk",
			EarlyMinutes: 10,
			LateMinutes:  30,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Policy: PolicyConfig{
			OrderCancelMinutes:   30,
			BookingCancelMinutes: 30,
		},
		RateLimit: RateLimitConfig{Enabled: false, Rate: "100-M", Prefix: "cozycup:test"},
		Wallet:    WalletConfig{Backend: "postgres", RedeemMaxRetries: 5},
	}
}
