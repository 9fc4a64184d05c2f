package profile

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
)

type Notifications struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
	App   bool `json:"app"`
}

// Settings is the account settings page: the login email plus
// notification and language preferences.
type Settings struct {
	Email         string        `json:"email"`
	Notifications Notifications `json:"notifications"`
	Language      string        `json:"language"`
}

func toSettings(u *models.User, s *models.UserSettings) *Settings {
	return &Settings{
		Email: u.Email,
		Notifications: Notifications{
			Email: s.EmailNotifications,
			SMS:   s.SMSNotifications,
			App:   s.AppNotifications,
		},
		Language: s.Language,
	}
}

// ======================================================
// GET
// ======================================================

type GetSettings struct {
	users user.Repository
}

func NewGetSettings(users user.Repository) *GetSettings {
	return &GetSettings{users: users}
}

func (uc *GetSettings) Execute(ctx context.Context, actor user.Actor, userID uint) (*Settings, error) {
	if !actor.CanActFor(userID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s, err := uc.users.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSettings(u, s), nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSettingsInput struct {
	Actor  user.Actor
	UserID uint

	Email         *string
	Notifications *Notifications
	Language      *string
}

type UpdateSettings struct {
	users user.Repository
}

func NewUpdateSettings(users user.Repository) *UpdateSettings {
	return &UpdateSettings{users: users}
}

func (uc *UpdateSettings) Execute(ctx context.Context, in UpdateSettingsInput) (*Settings, error) {
	if !in.Actor.CanActFor(in.UserID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	u, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	s, err := uc.users.GetSettings(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		before := u.Email
		if err := changeEmail(ctx, uc.users, u, *in.Email); err != nil {
			return nil, err
		}
		if u.Email != before {
			if err := uc.users.Update(ctx, u); err != nil {
				return nil, err
			}
		}
	}

	if in.Notifications != nil {
		s.EmailNotifications = in.Notifications.Email
		s.SMSNotifications = in.Notifications.SMS
		s.AppNotifications = in.Notifications.App
	}

	if in.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*in.Language))
		if lang == "" || len(lang) > 20 {
			return nil, httperr.ErrBusiness("invalid_language")
		}
		s.Language = lang
	}

	s.UserID = u.ID
	if err := uc.users.SaveSettings(ctx, s); err != nil {
		return nil, err
	}

	return toSettings(u, s), nil
}
