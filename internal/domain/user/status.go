package user

import (
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

func ParseStatus(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_user_status")
}
