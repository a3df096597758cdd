package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/flowmotion/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(pc *entity.PageContext) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	ContextID string `json:"context_id"`
	PageURL   string `json:"page_url"`
}
