package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Authenticator interface {
	IssueToken(userName string, roleID int, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) secret() ([]byte, error) {
	if s.cfg == nil || s.cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(s.cfg.Auth.Secret), nil
}

// IssueToken assina um token HS256 para uso nas rotas /v1.
// ttl menor ou igual a zero usa a validade padrão de 24h.
func (s *Service) IssueToken(userName string, roleID int, ttl time.Duration) (string, error) {
	key, err := s.secret()
	if err != nil {
		return "", err
	}

	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := &domain.Claims{
		UserName: userName,
		RoleID:   roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	key, err := s.secret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// RequireRole confirma que as claims pertencem a um dos papéis permitidos
func RequireRole(claims *domain.Claims, allowed ...int) error {
	if claims == nil {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "missing claims")
	}
	for _, role := range allowed {
		if claims.RoleID == role {
			return nil
		}
	}
	return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, fmt.Sprintf("role %d", claims.RoleID))
}
