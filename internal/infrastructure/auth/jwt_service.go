// Package auth provides the concrete password hashing and session token
// implementations behind the domain service interfaces.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"marketdz/internal/domain/service"
)

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService builds a TokenService signing HS256 tokens with the given
// secret. ttlSeconds bounds the session lifetime.
func NewJWTService(secret string, ttlSeconds int64) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttlSeconds <= 0 {
		ttlSeconds = 24 * 60 * 60
	}
	return &jwtService{
		secret: []byte(secret),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (s *jwtService) Generate(userID int, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(userID),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
		"admin": isAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) Validate(tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	userID, err := strconv.Atoi(sub)
	if err != nil {
		return 0, errors.New("token subject is not a user id")
	}
	return userID, nil
}

func (s *jwtService) Expiry() time.Duration {
	return s.ttl
}
