package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBUrl      string
	JWTSecret  string
	ServerPort string

	CORSOrigins []string
	TokenTTL    time.Duration
	BcryptCost  int

	AdminSeedSecret   string
	VerifyEmailDomain bool
	Timezone          string

	RedisURL string
	CacheTTL time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	MercadoPagoToken string
	PaymentCurrency  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBUrl:      getEnv("DATABASE_URL", "hirely:hirely@tcp(localhost:3306)/hirely?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "3000"),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		TokenTTL:    getDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:  getInt("BCRYPT_COST", 10),

		AdminSeedSecret:   getEnv("ADMIN_SEED_SECRET", ""),
		VerifyEmailDomain: getBool("VERIFY_EMAIL_DOMAIN", false),
		Timezone:          getEnv("APP_TIMEZONE", "Asia/Kathmandu"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDuration("CACHE_TTL", 5*time.Minute),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "no-reply@hirely.local"),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		MercadoPagoToken: getEnv("MP_ACCESS_TOKEN", ""),
		PaymentCurrency:  getEnv("PAYMENT_CURRENCY", "BRL"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) PaymentsEnabled() bool {
	return c.MercadoPagoToken != ""
}
