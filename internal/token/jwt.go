package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("invalid token")

type Claims struct {
	UserID    uint
	Role      string
	SessionID string
	ExpiresAt time.Time
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

func (i *Issuer) Issue(userID uint, role, sessionID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"sid":  sessionID,
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

func (i *Issuer) Parse(raw string) (*Claims, error) {
	t, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalid
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalid
	}

	sub, ok1 := mc["sub"].(float64)
	sid, ok2 := mc["sid"].(string)
	role, _ := mc["role"].(string)
	if !ok1 || !ok2 || sid == "" {
		return nil, ErrInvalid
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalid
	}

	return &Claims{
		UserID:    uint(sub),
		Role:      role,
		SessionID: sid,
		ExpiresAt: exp.Time,
	}, nil
}
