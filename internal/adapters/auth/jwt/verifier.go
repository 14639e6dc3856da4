package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"manolos-gestion/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token invalid")
)

// Verifier implementa auth.AuthVerifier con HS256 local.
// Mismo contrato que el middleware espera: claims o error, sin decidir 401 aquí.
type Verifier struct {
	secret []byte
}

func NewVerifier(cfg Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretEmpty
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := gojwt.Parse(token, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	mc, ok := parsed.Claims.(gojwt.MapClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	claims := auth.Claims{
		UserID: stringClaim(mc, "sub"),
		Email:  stringClaim(mc, "correo"),
		Name:   stringClaim(mc, "nombre"),
		Role:   stringClaim(mc, "rol"),
	}
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("jwt claims missing sub")
	}
	return claims, nil
}

func stringClaim(mc gojwt.MapClaims, key string) string {
	v, ok := mc[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
