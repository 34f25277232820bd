package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT access token'ın payload'ı.
//
// jwt.RegisteredClaims embed edilir — exp, iat, iss gibi standart claim'ler
// oradan gelir. user_id bizim custom claim'imizdir; auth middleware token'ı
// doğruladıktan sonra bu ID ile kullanıcıyı DB'den yükler.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
