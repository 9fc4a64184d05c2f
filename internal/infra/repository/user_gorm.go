package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) GetRoleByName(
	ctx context.Context,
	name string,
) (*models.Role, error) {

	var role models.Role
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error; err != nil {
		return nil, notFound(err, "role_not_found")
	}
	return &role, nil
}

func (r *UserGormRepository) ListRoles(
	ctx context.Context,
	names []string,
) ([]models.Role, error) {

	var roles []models.Role
	if err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Order("id ASC").
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
	settings *models.UserSettings,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			if httperr.IsDuplicateKey(err) {
				return httperr.ErrBusiness("email_taken")
			}
			return err
		}

		if settings == nil {
			return nil
		}
		settings.UserID = u.ID
		return tx.Create(settings).Error
	})
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {

	err := r.db.WithContext(ctx).
		Model(u).
		Select("name", "email", "phone", "address", "bio", "profile_pic", "status").
		Updates(u).Error
	if httperr.IsDuplicateKey(err) {
		return httperr.ErrBusiness("email_taken")
	}
	return err
}

func (r *UserGormRepository) UpdateLastLogin(
	ctx context.Context,
	id uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *UserGormRepository) UpdatePassword(
	ctx context.Context,
	id uint,
	hash string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *UserGormRepository) List(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})

	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) Count(ctx context.Context) (domain.Counts, error) {
	var c domain.Counts

	db := r.db.WithContext(ctx).Model(&models.User{})
	if err := db.Count(&c.Total).Error; err != nil {
		return c, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("status = ?", domain.StatusActive).
		Count(&c.Active).Error; err != nil {
		return c, err
	}
	return c, nil
}

func (r *UserGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserSettings{}).Error; err != nil {
			return err
		}
		if err := tx.Where("provider_id = ?", id).Delete(&models.ProviderService{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("user_not_found")
		}
		return nil
	})
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

// GetSettings falls back to the defaults when the user has no row yet.
func (r *UserGormRepository) GetSettings(
	ctx context.Context,
	userID uint,
) (*models.UserSettings, error) {

	var s models.UserSettings
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *UserGormRepository) SaveSettings(
	ctx context.Context,
	s *models.UserSettings,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.UserSettings
		err := tx.Where("user_id = ?", s.UserID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.ID = 0
			return tx.Create(s).Error
		case err != nil:
			return err
		}

		s.ID = existing.ID
		return tx.Model(&existing).
			Select("email_notifications", "sms_notifications", "app_notifications", "language").
			Updates(s).Error
	})
}

func (r *UserGormRepository) GetContact(
	ctx context.Context,
	id uint,
) (*domain.Contact, error) {

	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := r.GetSettings(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.Contact{
		UserID:             u.ID,
		Name:               u.Name,
		Email:              u.Email,
		EmailNotifications: settings.EmailNotifications,
	}, nil
}

// notFound turns gorm's missing-row error into a business code and
// passes every other error through.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
