package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hirely-api/internal/domain/user"
	"github.com/BruksfildServices01/hirely-api/internal/httperr"
	"github.com/BruksfildServices01/hirely-api/internal/models"
	"github.com/BruksfildServices01/hirely-api/internal/token"
	"github.com/BruksfildServices01/hirely-api/internal/validators"
)

// Scope decides which accounts an endpoint accepts.
type Scope int

const (
	ScopeMember Scope = iota // seekers and providers
	ScopeAdmin
)

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type Login struct {
	users    user.Repository
	sessions user.SessionRepository
	hasher   *Hasher
	tokens   *token.Issuer
	now      func() time.Time
}

func NewLogin(
	users user.Repository,
	sessions user.SessionRepository,
	hasher *Hasher,
	tokens *token.Issuer,
) *Login {
	return &Login{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	scope Scope,
	in LoginInput,
) (*LoginResult, error) {

	u, err := uc.users.GetByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			uc.hasher.Burn(in.Password)
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !uc.hasher.Matches(u.PasswordHash, in.Password) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	isAdmin := u.Role == user.RoleAdmin
	if (scope == ScopeAdmin) != isAdmin {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if u.Status != user.StatusActive {
		return nil, httperr.ErrBusiness("account_inactive")
	}

	now := uc.now()
	sess := &models.Session{
		UserID:    u.ID,
		Token:     uuid.NewString(),
		IPAddress: in.IPAddress,
		UserAgent: truncate(in.UserAgent, 255),
		ExpiresAt: now.Add(uc.tokens.TTL()),
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	signed, err := uc.tokens.Issue(u.ID, u.Role, sess.Token, now)
	if err != nil {
		return nil, err
	}

	if err := uc.users.UpdateLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now

	return &LoginResult{
		User:      u,
		Token:     signed,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
