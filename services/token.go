package services

import (
	"time"

	"portfolio-api/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Identity is what a session token asserts about its bearer.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  models.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Identity, error)
}

type tokenManager struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, expiration time.Duration) TokenManager {
	return newTokenManager(secret, expiration, time.Now)
}

func newTokenManager(secret string, expiration time.Duration, now func() time.Time) *tokenManager {
	return &tokenManager{
		secret:     []byte(secret),
		expiration: expiration,
		now:        now,
	}
}

func (m *tokenManager) Issue(identity Identity) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: identity.ID.String(),
		Email:  identity.Email,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify collapses every failure, expiry included, into ErrorInvalidToken.
func (m *tokenManager) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, models.ErrorInvalidToken{}
	}

	if !claims.VerifyExpiresAt(m.now(), true) {
		return Identity{}, models.ErrorInvalidToken{}
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, models.ErrorInvalidToken{}
	}

	return Identity{ID: id, Email: claims.Email, Role: claims.Role}, nil
}
