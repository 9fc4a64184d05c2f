package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

const (
	MinPasswordLength = 8
	// bcrypt only reads the first 72 bytes
	MaxPasswordLength = 72
)

type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", httperr.ErrBusiness("weak_password")
	}
	if len(password) > MaxPasswordLength {
		return "", httperr.ErrBusiness("password_too_long")
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *Hasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Burn spends one comparison so unknown emails take as long as wrong passwords.
func (h *Hasher) Burn(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("hirely-dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
}
