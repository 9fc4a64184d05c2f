package catalog

import (
	"strings"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

const (
	Available   = "available"
	Unavailable = "unavailable"
)

// ParseAvailability defaults an empty value to "available".
func ParseAvailability(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return Available, nil
	case Available, Unavailable:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_availability")
}
