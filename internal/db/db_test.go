package db

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hirely-api/internal/config"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestSeedRolesIsIdempotent(t *testing.T) {
	gdb := openSQLite(t)

	for i := 0; i < 2; i++ {
		if err := SeedRoles(gdb); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	var count int64
	gdb.Model(&models.Role{}).Count(&count)
	if count != 3 {
		t.Fatalf("expected 3 roles, got %d", count)
	}
}

func TestSeedServicesSkipsExisting(t *testing.T) {
	gdb := openSQLite(t)

	if err := gdb.Create(&models.Service{Name: "Plumber", Category: "Custom"}).Error; err != nil {
		t.Fatal(err)
	}

	n, err := SeedServices(context.Background(), gdb)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(defaultServices)-1 {
		t.Errorf("expected %d created, got %d", len(defaultServices)-1, n)
	}

	n, err = SeedServices(context.Background(), gdb)
	if err != nil || n != 0 {
		t.Errorf("second run: created %d, err %v", n, err)
	}

	var plumber models.Service
	gdb.Where("name = ?", "Plumber").First(&plumber)
	if plumber.Category != "Custom" {
		t.Errorf("existing service overwritten: %+v", plumber)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
