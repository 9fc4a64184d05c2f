package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type SessionGormRepository struct {
	db *gorm.DB
}

func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

func (r *SessionGormRepository) Create(
	ctx context.Context,
	s *models.Session,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionGormRepository) IsActive(
	ctx context.Context,
	token string,
	now time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", token, now).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SessionGormRepository) Revoke(
	ctx context.Context,
	token string,
	now time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", now).Error
}

func (r *SessionGormRepository) RevokeAllForUser(
	ctx context.Context,
	userID uint,
	now time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// PurgeExpired deletes sessions that expired or were revoked before now.
func (r *SessionGormRepository) PurgeExpired(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("expires_at <= ? OR revoked_at IS NOT NULL", now).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.SessionRepository = (*SessionGormRepository)(nil)
