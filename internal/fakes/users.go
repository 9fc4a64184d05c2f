// Package fakes holds func-field test doubles for the repository interfaces.
// A nil func returns zero values.
package fakes

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type Users struct {
	GetByIDFunc         func(ctx context.Context, id uint) (*models.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	EmailTakenFunc      func(ctx context.Context, email string, exceptID uint) (bool, error)
	GetRoleByNameFunc   func(ctx context.Context, name string) (*models.Role, error)
	ListRolesFunc       func(ctx context.Context, names []string) ([]models.Role, error)
	CreateFunc          func(ctx context.Context, u *models.User, s *models.UserSettings) error
	UpdateFunc          func(ctx context.Context, u *models.User) error
	UpdateLastLoginFunc func(ctx context.Context, id uint, at time.Time) error
	UpdatePasswordFunc  func(ctx context.Context, id uint, hash string) error
	ListFunc            func(ctx context.Context, f user.ListFilter) ([]models.User, error)
	CountFunc           func(ctx context.Context) (user.Counts, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	GetSettingsFunc     func(ctx context.Context, userID uint) (*models.UserSettings, error)
	SaveSettingsFunc    func(ctx context.Context, s *models.UserSettings) error
	GetContactFunc      func(ctx context.Context, id uint) (*user.Contact, error)
}

func (f *Users) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (f *Users) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	if f.EmailTakenFunc != nil {
		return f.EmailTakenFunc(ctx, email, exceptID)
	}
	return false, nil
}

func (f *Users) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	if f.GetRoleByNameFunc != nil {
		return f.GetRoleByNameFunc(ctx, name)
	}
	return &models.Role{ID: 1, Name: name}, nil
}

func (f *Users) ListRoles(ctx context.Context, names []string) ([]models.Role, error) {
	if f.ListRolesFunc != nil {
		return f.ListRolesFunc(ctx, names)
	}
	return nil, nil
}

func (f *Users) Create(ctx context.Context, u *models.User, s *models.UserSettings) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, u, s)
	}
	return nil
}

func (f *Users) Update(ctx context.Context, u *models.User) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, u)
	}
	return nil
}

func (f *Users) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if f.UpdateLastLoginFunc != nil {
		return f.UpdateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (f *Users) UpdatePassword(ctx context.Context, id uint, hash string) error {
	if f.UpdatePasswordFunc != nil {
		return f.UpdatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (f *Users) List(ctx context.Context, filter user.ListFilter) ([]models.User, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (f *Users) Count(ctx context.Context) (user.Counts, error) {
	if f.CountFunc != nil {
		return f.CountFunc(ctx)
	}
	return user.Counts{}, nil
}

func (f *Users) Delete(ctx context.Context, id uint) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *Users) GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error) {
	if f.GetSettingsFunc != nil {
		return f.GetSettingsFunc(ctx, userID)
	}
	return user.DefaultSettings(userID), nil
}

func (f *Users) SaveSettings(ctx context.Context, s *models.UserSettings) error {
	if f.SaveSettingsFunc != nil {
		return f.SaveSettingsFunc(ctx, s)
	}
	return nil
}

func (f *Users) GetContact(ctx context.Context, id uint) (*user.Contact, error) {
	if f.GetContactFunc != nil {
		return f.GetContactFunc(ctx, id)
	}
	return nil, nil
}

var _ user.Repository = (*Users)(nil)

type Sessions struct {
	CreateFunc           func(ctx context.Context, s *models.Session) error
	IsActiveFunc         func(ctx context.Context, token string, now time.Time) (bool, error)
	RevokeFunc           func(ctx context.Context, token string, now time.Time) error
	RevokeAllForUserFunc func(ctx context.Context, userID uint, now time.Time) error
	PurgeExpiredFunc     func(ctx context.Context, now time.Time) (int64, error)
}

func (f *Sessions) Create(ctx context.Context, s *models.Session) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, s)
	}
	return nil
}

func (f *Sessions) IsActive(ctx context.Context, token string, now time.Time) (bool, error) {
	if f.IsActiveFunc != nil {
		return f.IsActiveFunc(ctx, token, now)
	}
	return true, nil
}

func (f *Sessions) Revoke(ctx context.Context, token string, now time.Time) error {
	if f.RevokeFunc != nil {
		return f.RevokeFunc(ctx, token, now)
	}
	return nil
}

func (f *Sessions) RevokeAllForUser(ctx context.Context, userID uint, now time.Time) error {
	if f.RevokeAllForUserFunc != nil {
		return f.RevokeAllForUserFunc(ctx, userID, now)
	}
	return nil
}

func (f *Sessions) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	if f.PurgeExpiredFunc != nil {
		return f.PurgeExpiredFunc(ctx, now)
	}
	return 0, nil
}

var _ user.SessionRepository = (*Sessions)(nil)
