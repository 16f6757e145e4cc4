package database

import (
	"fmt"
	"time"

	accountModel "freelance-job-tracker/internal/account/model"
	"freelance-job-tracker/internal/config"
	jobModel "freelance-job-tracker/internal/job/model"
	userModel "freelance-job-tracker/internal/user/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	// Without a configured postgres host, fall back to an embedded sqlite
	// file so the service can run standalone.
	if cfg.Database.Host == "" {
		path := cfg.Database.DBName
		if path == "" {
			path = "jobtracker.db"
		}
		return NewSQLite(path)
	}

	dsn := cfg.Database.DSN()

	logMode := logger.Warn
	if cfg.Server.Environment != "production" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates or updates the users, accounts and jobs tables. Foreign
// keys carry ON DELETE CASCADE, but deletions are still performed explicitly
// at the repository level so the cascade behavior stays visible and testable.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&accountModel.Account{},
		&jobModel.Job{},
	)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
