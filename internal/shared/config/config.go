package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	JWTSecret string

	// Email provider: "brevo" or "resend"
	EmailProvider string
	BrevoAPIKey   string
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string

	// Payment gateway: "manual" or "razorpay"
	PaymentMode       string
	RazorpayKeyID     string
	RazorpayKeySecret string
	UPIVirtualAddress string
	BusinessName      string

	// File storage: "local" or "s3"
	StorageProvider string
	LocalStorageDir string
	LocalStorageURL string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Region        string
	S3Bucket        string

	// Scheduler
	OverdueCheckSchedule string
	DailySummarySchedule string

	DefaultPaymentTermsDays int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		BrevoAPIKey:   os.Getenv("BREVO_API_KEY"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailFromName: os.Getenv("EMAIL_FROM_NAME"),

		PaymentMode:       os.Getenv("PAYMENT_MODE"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		UPIVirtualAddress: os.Getenv("UPI_VPA"),
		BusinessName:      os.Getenv("BUSINESS_NAME"),

		StorageProvider: os.Getenv("STORAGE_PROVIDER"),
		LocalStorageDir: os.Getenv("LOCAL_STORAGE_DIR"),
		LocalStorageURL: os.Getenv("LOCAL_STORAGE_URL"),
		S3AccessKeyID:   os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:     os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET"),

		OverdueCheckSchedule: os.Getenv("OVERDUE_CHECK_SCHEDULE"),
		DailySummarySchedule: os.Getenv("DAILY_SUMMARY_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.PaymentMode == "" {
		cfg.PaymentMode = "manual"
	}
	if cfg.StorageProvider == "" {
		cfg.StorageProvider = "local"
	}
	if cfg.LocalStorageDir == "" {
		cfg.LocalStorageDir = "./storage"
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = "BizLedger"
	}
	if cfg.OverdueCheckSchedule == "" {
		cfg.OverdueCheckSchedule = "0 8 * * *" // daily 08:00
	}
	if cfg.DailySummarySchedule == "" {
		cfg.DailySummarySchedule = "0 18 * * *" // daily 18:00
	}
	cfg.DefaultPaymentTermsDays = envInt("DEFAULT_PAYMENT_TERMS_DAYS", 30)

	return cfg
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
