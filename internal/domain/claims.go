package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// Claims são as informações carregadas no token de acesso da API
type Claims struct {
	UserName string `json:"user_name"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}
