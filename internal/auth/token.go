package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = time.Hour

// TokenService issues and verifies the signed bearer tokens carried by
// admin requests. Tokens are self-contained: every request re-verifies
// independently and no session state is kept server-side.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs an HS256 token carrying the admin user's id.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenLifetime).Unix(),
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of a token and returns the
// embedded user id.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return 0, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	uid, ok := claims["user_id"].(float64)
	if !ok || uid <= 0 {
		return 0, errors.New("token missing user_id claim")
	}
	return uint(uid), nil
}
