package utils

import (
	"errors"
	"time"

	"growlife/config"

	"github.com/golang-jwt/jwt"
)

// TokenValidity is the fixed lifetime of an issued identity token.
const TokenValidity = 7 * 24 * time.Hour

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT carrying the account id, username and role.
func GenerateToken(userID, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(TokenValidity).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ParseToken validates a token string and extracts the identity claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, errors.New("token is missing identity claims")
	}

	return &TokenClaims{UserID: id, Username: username, Role: role}, nil
}
