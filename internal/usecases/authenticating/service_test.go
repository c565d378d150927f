package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	cfg := &config.Config{}
	cfg.Auth.Secret = secret
	return NewService(cfg).(*Service)
}

func TestService_IssueAndValidateToken(t *testing.T) {
	service := newTestService("segredo")

	token, err := service.IssueToken("analista", domain.RoleViewer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "analista", claims.UserName)
	assert.Equal(t, domain.RoleViewer, claims.RoleID)
	assert.Equal(t, "analista", claims.Subject)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	base := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		wantErr  error
		wantCode string
	}{
		{
			name: "Deve rejeitar token expirado",
			token: func(t *testing.T) string {
				issuer := newTestService("segredo")
				issuer.now = func() time.Time { return base.Add(-48 * time.Hour) }
				token, err := issuer.IssueToken("analista", domain.RoleAdmin, time.Hour)
				require.NoError(t, err)
				return token
			},
			wantErr:  ErrExpiredToken,
			wantCode: apiErrors.ErrExpiredToken,
		},
		{
			name: "Deve rejeitar token assinado com outro segredo",
			token: func(t *testing.T) string {
				other := newTestService("outro")
				other.now = func() time.Time { return base }
				token, err := other.IssueToken("analista", domain.RoleAdmin, time.Hour)
				require.NoError(t, err)
				return token
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name: "Deve rejeitar algoritmo diferente de HMAC",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, &domain.Claims{UserName: "x"})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
		{
			name:     "Deve rejeitar texto que não é token",
			token:    func(t *testing.T) string { return "abc.def" },
			wantErr:  ErrInvalidToken,
			wantCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService("segredo")
			service.now = func() time.Time { return base }

			claims, err := service.ValidateToken(tt.token(t))
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_MissingSecret(t *testing.T) {
	service := newTestService("")

	_, err := service.IssueToken("analista", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = service.ValidateToken("qualquer")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestRequireRole(t *testing.T) {
	admin := &domain.Claims{UserName: "adm", RoleID: domain.RoleAdmin}
	viewer := &domain.Claims{UserName: "ana", RoleID: domain.RoleViewer}

	assert.NoError(t, RequireRole(admin, domain.RoleAdmin))
	assert.NoError(t, RequireRole(viewer, domain.RoleAdmin, domain.RoleViewer))
	assert.ErrorIs(t, RequireRole(viewer, domain.RoleAdmin), ErrInsufficientPrivilege)
	assert.ErrorIs(t, RequireRole(nil, domain.RoleAdmin), ErrInvalidToken)
}
