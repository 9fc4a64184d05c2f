package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/hirely-api/internal/db"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hirely.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.SeedRoles(gdb); err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, name, email, role string) *models.User {
	t.Helper()

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       "active",
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedService(t *testing.T, gdb *gorm.DB, name string) *models.Service {
	t.Helper()

	s := &models.Service{Name: name, Category: "home"}
	if err := gdb.Create(s).Error; err != nil {
		t.Fatalf("seed service %s: %v", name, err)
	}
	return s
}

func seedOffering(t *testing.T, gdb *gorm.DB, providerID, serviceID uint, rate float64) *models.ProviderService {
	t.Helper()

	ps := &models.ProviderService{
		ProviderID:         providerID,
		ServiceID:          serviceID,
		HourlyRate:         rate,
		AvailabilityStatus: "available",
	}
	if err := gdb.Create(ps).Error; err != nil {
		t.Fatalf("seed offering: %v", err)
	}
	return ps
}
