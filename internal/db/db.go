package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/hirely-api/internal/config"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	return db
}

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		return mysql.Open(cfg.DBUrl), nil
	case "postgres":
		return postgres.Open(cfg.DBUrl), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func Open(cfg *config.Config) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Service{},
		&models.ProviderService{},
		&models.Booking{},
		&models.Review{},
		&models.Session{},
		&models.UserSettings{},
		&models.AuditLog{},
	)
}

var defaultRoles = []models.Role{
	{Name: "seeker", Description: "Books services offered by providers"},
	{Name: "provider", Description: "Offers one or more services at an hourly rate"},
	{Name: "admin", Description: "Manages users, catalog and bookings"},
}

// SeedRoles is idempotent.
func SeedRoles(db *gorm.DB) error {
	roles := make([]models.Role, len(defaultRoles))
	copy(roles, defaultRoles)

	return db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&roles).Error
}
