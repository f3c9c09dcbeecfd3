package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.StandardClaims
}

var jwtKey []byte

// InitJWT reads the signing secret from the environment. Called once from
// main after godotenv has loaded; an empty secret is a startup failure.
func InitJWT() error {
	key := os.Getenv("ACCESS_TOKEN_SECRET")
	if key == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET not set in environment")
	}
	jwtKey = []byte(key)
	return nil
}

func GenerateJWT(email, name string) (string, error) {
	expirationTime := time.Now().Add(1 * time.Hour)

	claims := &Claims{
		Email: email,
		Name:  name,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "property_review_system",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT verifies the signature and expiry. Malformed, tampered and
// expired tokens are all reported the same way to the caller.
func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
