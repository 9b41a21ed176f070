package utils

import (
	"github.com/spf13/viper"
)

// InsecureDefaultSecret is the JWT fallback used when no secret is
// configured. main logs a warning when it is active; production
// deployments must override it.
const InsecureDefaultSecret = "insecure-local-dev-secret"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Hash     HashConfig
	Email    EmailConfig
	OTP      OTPConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type HashConfig struct {
	BcryptCost int
}

type EmailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes      int
	DeleteAfterMinutes int
	PurgeIntervalSecs  int
}

type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	viper.SetDefault("APP_NAME", "identity-service")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_SECRET", InsecureDefaultSecret)
	viper.SetDefault("JWT_EXPIRY_HOURS", 1)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 5)
	viper.SetDefault("OTP_DELETE_AFTER_MINUTES", 10)
	viper.SetDefault("OTP_PURGE_INTERVAL_SECONDS", 60)
	viper.SetDefault("S3_REGION", "us-east-1")

	// Missing .env is fine, environment variables still apply
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Hash: HashConfig{
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetString("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes:      viper.GetInt("OTP_EXPIRY_MINUTES"),
			DeleteAfterMinutes: viper.GetInt("OTP_DELETE_AFTER_MINUTES"),
			PurgeIntervalSecs:  viper.GetInt("OTP_PURGE_INTERVAL_SECONDS"),
		},
		Storage: StorageConfig{
			Endpoint:  viper.GetString("S3_ENDPOINT"),
			Region:    viper.GetString("S3_REGION"),
			Bucket:    viper.GetString("S3_BUCKET"),
			AccessKey: viper.GetString("S3_ACCESS_KEY"),
			SecretKey: viper.GetString("S3_SECRET_KEY"),
		},
	}

	return config, nil
}
