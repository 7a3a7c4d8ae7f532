package db

import (
	"time"

	"github.com/volunteerhub-dev/volunteerhub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects through any gorm dialector with the settings the service
// relies on: UTC timestamps and translated constraint errors.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn))

	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()

	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// MigrateDatabase creates or updates every table, including the unique
// (project, volunteer) indexes on applications and roster entries.
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Event{},
		&models.Application{},
		&models.Volunteer{},
		&models.Notification{},
	)
}
