package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"manolos-gestion/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretEmpty = errors.New("jwt secret is empty")
)

// Config para firmar/verificar tokens HS256.
type Config struct {
	Secret string

	// TTL del token emitido en login. Si es <= 0 se usan 7 días.
	ExpiresIn time.Duration
}

// Signer implementa auth.TokenIssuer con HS256.
type Signer struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewSigner(cfg Config) (*Signer, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretEmpty
	}
	ttl := cfg.ExpiresIn
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Signer{
		secret:    []byte(secret),
		expiresIn: ttl,
		now:       time.Now,
	}, nil
}

func (s *Signer) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	now := s.now()
	t := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub":    claims.UserID,
		"correo": claims.Email,
		"nombre": claims.Name,
		"rol":    claims.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(s.expiresIn).Unix(),
	})
	return t.SignedString(s.secret)
}
