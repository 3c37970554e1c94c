package utils

import (
	"goalpad/backend/config"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenLifetime bounds issued tokens. The upstream API never pinned a value;
// 72 hours is the documented choice here.
const TokenLifetime = time.Hour * 72

// GenerateJWTToken issues an HS256 token carrying the username as subject.
func GenerateJWTToken(username string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken verifies the signature and expiry and returns the subject username.
func ParseToken(tokenString string, cfg *config.Config) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid subject in token")
	}

	return username, nil
}
