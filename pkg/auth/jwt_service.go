package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "cardlink-api"

	useAccess  = "access"
	useRefresh = "refresh"

	defaultRefreshLifespan = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type JWTService struct {
	secretKey        []byte
	refreshSecretKey []byte
	tokenLifespan    time.Duration
	refreshLifespan  time.Duration
}

type CustomClaims struct {
	AccountID uuid.UUID `json:"account_id"`
	TokenUse  string    `json:"token_use"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, tokenLifespan time.Duration) *JWTService {
	return &JWTService{
		secretKey:        []byte(secretKey),
		refreshSecretKey: []byte(secretKey),
		tokenLifespan:    tokenLifespan,
		refreshLifespan:  defaultRefreshLifespan,
	}
}

// WithRefreshSecret signs refresh tokens with their own key. An empty secret
// keeps the access key and a zero lifespan keeps 30 days.
func (s *JWTService) WithRefreshSecret(secretKey string, lifespan time.Duration) *JWTService {
	if secretKey != "" {
		s.refreshSecretKey = []byte(secretKey)
	}
	if lifespan != 0 {
		s.refreshLifespan = lifespan
	}
	return s
}

func (s *JWTService) GenerateToken(accountID uuid.UUID) (string, error) {
	return s.sign(accountID, useAccess, s.secretKey, s.tokenLifespan)
}

func (s *JWTService) GenerateRefreshToken(accountID uuid.UUID) (string, error) {
	return s.sign(accountID, useRefresh, s.refreshSecretKey, s.refreshLifespan)
}

// ValidateToken accepts access tokens only.
func (s *JWTService) ValidateToken(tokenString string) (*CustomClaims, error) {
	return s.parse(tokenString, useAccess, s.secretKey)
}

func (s *JWTService) ValidateRefreshToken(tokenString string) (*CustomClaims, error) {
	return s.parse(tokenString, useRefresh, s.refreshSecretKey)
}

func (s *JWTService) sign(accountID uuid.UUID, use string, key []byte, lifespan time.Duration) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		accountID,
		use,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   accountID.String(),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}

	return signedString, nil
}

func (s *JWTService) parse(tokenString, use string, key []byte) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature algorithm: %v", token.Header["alg"])
		}
		return key, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: error when parsing token claims", ErrInvalidToken)
	}
	if claims.TokenUse != use {
		return nil, fmt.Errorf("%w: %s token used as %s token", ErrInvalidToken, claims.TokenUse, use)
	}
	return claims, nil
}
