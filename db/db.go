package db

import (
	"context"
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type ConnConfig struct {
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
	DebugMode bool
	Migrate   bool
	MaxConns  int
}

func (c ConnConfig) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", c.Host, c.Port, c.User, c.Database, c.Password)
}

func Connect(conf ConnConfig) error {
	if DB != nil {
		return nil
	}
	gormConf := &gorm.Config{
		Logger: gorm_logrus.New(),
	}
	if conf.DebugMode {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(postgres.Open(conf.dsn()), gormConf)
	if err != nil {
		return errors.Wrap(err, "database connection failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "database pool not available")
	}
	if conf.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxConns)
		sqlDB.SetMaxIdleConns(conf.MaxConns / 2)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	if conf.DebugMode {
		db = db.Debug()
	}
	DB = db
	log.WithField("host", conf.Host).WithField("database", conf.Database).Info("database connected")
	if conf.Migrate {
		return AutoMigrateDB()
	}
	return nil
}

// PingDB checks the connection within the deadline of ctx.
func PingDB(ctx context.Context) error {
	if DB == nil {
		return errors.New("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
