package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/hirely-api/internal/models"
)

var defaultServices = []models.Service{
	{Name: "Web Developer", Category: "Technology", Description: "Websites and web applications"},
	{Name: "House Cleaner", Category: "Home", Description: "Regular and deep cleaning"},
	{Name: "Photography", Category: "Creative", Description: "Events, portraits and products"},
	{Name: "Electrician", Category: "Home", Description: "Wiring, fixtures and repairs"},
	{Name: "Plumber", Category: "Home", Description: "Leaks, installs and drains"},
	{Name: "Graphic Designer", Category: "Creative", Description: "Logos, branding and print"},
}

// SeedServices inserts the default catalog, skipping names that already
// exist. It returns how many services were created.
func SeedServices(ctx context.Context, db *gorm.DB) (int, error) {
	created := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range defaultServices {
			var n int64
			if err := tx.Model(&models.Service{}).Where("name = ?", s.Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}

			svc := s
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})

	return created, err
}
