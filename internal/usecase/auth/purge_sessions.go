package auth

import (
	"context"
	"time"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
)

// PurgeSessions deletes expired and revoked sessions.
type PurgeSessions struct {
	sessions user.SessionRepository
	now      func() time.Time
}

func NewPurgeSessions(sessions user.SessionRepository) *PurgeSessions {
	return &PurgeSessions{sessions: sessions, now: time.Now}
}

func (uc *PurgeSessions) Execute(ctx context.Context) (int64, error) {
	return uc.sessions.PurgeExpired(ctx, uc.now())
}
