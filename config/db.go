package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the in-memory catalog database. There is no real data store
// behind this application; the catalog lives in a per-process sqlite
// instance seeded at boot.
func NewDB() (*gorm.DB, error) {
	dsn := GetEnv("SQLITE_DSN", ":memory:")

	logMode := logger.Warn
	if os.Getenv("GORM_LOG") == "on" {
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
