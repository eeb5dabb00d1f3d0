package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr      string `default:"" env:"APP_HOST"`
		Port            int    `default:"6000"  env:"APP_PORT"`
		BodyLimitMb     int    `default:"20" env:"APP_BODY_LIMIT_MB"`
		PublicHost      string `default:"http://localhost:6000" env:"APP_PUBLIC_HOST"`
		CorsOrigins     string `default:"*" env:"APP_CORS_ORIGINS"`
		ErrorWebhookUrl string `default:"" env:"APP_ERROR_WEBHOOK_URL"` // 5xx replies are posted here when set
		LogLevel        string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"smartjob" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		SeedDemoData   *bool  `default:"false" env:"DB_SEED_DEMO_DATA"`
		MaxConns       int    `default:"20" env:"DB_MAX_CONNS"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Email       string `default:"" env:"ADMIN_EMAIL"`
		Password    string `default:"" env:"ADMIN_PASSWORD"`
		Name        string `default:"Administrator" env:"ADMIN_NAME"`
		CompanyName string `default:"" env:"ADMIN_COMPANY"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"smartjob" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env is optional, values from the real environment win
	if err := godotenv.Load(); err != nil {
		log.Debug(".env not loaded")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
