package app

import (
	"fmt"
	"path"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Kajalkumari31/ministore/config"
	"github.com/Kajalkumari31/ministore/internal/catalog"
	"github.com/Kajalkumari31/ministore/internal/domain"
)

// openProductStore selects the store backend from configuration. The bolt
// backend is the embedded default; postgres is the production option.
func openProductStore(cfg *config.AppConfig) (catalog.ProductStore, error) {
	switch cfg.Database.Type {
	case "postgres":
		db, err := getPostgresDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.Migrator().AutoMigrate(domain.Tables...); err != nil {
			return nil, err
		}
		return catalog.NewGormProductStore(db), nil
	default:
		file := cfg.Database.BoltFile
		if !path.IsAbs(file) {
			file = path.Join(cfg.GetDataDir(), file)
		}
		return catalog.NewBoltProductStore(file)
	}
}

func getPostgresDatabase(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(cfg.MaxConn)
	sqldb.SetMaxIdleConns(cfg.IdleConn)
	sqldb.SetConnMaxLifetime(time.Hour)
	return db, nil
}
