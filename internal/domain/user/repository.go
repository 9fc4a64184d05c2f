package user

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type ListFilter struct {
	Role   string
	Status string
	Query  string
}

// Contact is what notifications need to reach a user.
type Contact struct {
	UserID             uint
	Name               string
	Email              string
	EmailNotifications bool
}

type Counts struct {
	Total  int64
	Active int64
}

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
	ListRoles(ctx context.Context, names []string) ([]models.Role, error)

	// Create inserts the user and a default settings row together.
	Create(ctx context.Context, u *models.User, settings *models.UserSettings) error
	Update(ctx context.Context, u *models.User) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	UpdatePassword(ctx context.Context, id uint, hash string) error

	List(ctx context.Context, filter ListFilter) ([]models.User, error)
	Count(ctx context.Context) (Counts, error)

	// Delete removes the user together with sessions, settings and offerings.
	Delete(ctx context.Context, id uint) error

	GetSettings(ctx context.Context, userID uint) (*models.UserSettings, error)
	SaveSettings(ctx context.Context, s *models.UserSettings) error

	GetContact(ctx context.Context, id uint) (*Contact, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	IsActive(ctx context.Context, token string, now time.Time) (bool, error)
	Revoke(ctx context.Context, token string, now time.Time) error
	RevokeAllForUser(ctx context.Context, userID uint, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

func DefaultSettings(userID uint) *models.UserSettings {
	return &models.UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		SMSNotifications:   false,
		AppNotifications:   true,
		Language:           "english",
	}
}
