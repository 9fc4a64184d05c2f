package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
)

type Logout struct {
	sessions user.SessionRepository
}

func NewLogout(sessions user.SessionRepository) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, sessionID string) error {
	return uc.sessions.Revoke(ctx, sessionID, time.Now())
}
