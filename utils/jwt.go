package utils

import (
	"errors"
	"time"

	"nestulasli/config"

	"github.com/golang-jwt/jwt"
)

func adminSecret() []byte {
	secret := config.AppConfig.AdminJWTSecret
	if secret == "" {
		secret = "NEST_ULASLI_DEV"
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT for admin configuration access.
// The token expires after the specified duration.
func GenerateAdminToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminSecret())
}

// ValidateAdminToken parses a token string and verifies the admin claim.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return adminSecret(), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if isAdmin, _ := claims["admin"].(bool); !isAdmin {
		return errors.New("token lacks admin claim")
	}
	return nil
}
