package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/damayanti/damayanti-be/internal/models"
)

var (
	// ErrInvalidToken covers bad signatures, malformed tokens and unusable claims.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a correctly signed token past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the identity carried inside an access token.
type Claims struct {
	UserID   uuid.UUID
	Email    string
	FullName string
	Role     models.Role
}

// ClaimsFor builds the token claims for a stored user.
func ClaimsFor(user models.User) Claims {
	return Claims{UserID: user.ID, Email: user.Email, FullName: user.FullName, Role: user.Role}
}

type tokenClaims struct {
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 signed JWTs.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetime.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for c that expires after the configured lifetime.
func (t *TokenManager) Issue(c Claims) (string, error) {
	now := t.now()
	claims := tokenClaims{
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   c.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature, issuer and lifetime of raw and returns its claims.
func (t *TokenManager) Verify(raw string) (Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil || claims.Email == "" || !claims.Role.Valid() {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: id, Email: claims.Email, FullName: claims.FullName, Role: claims.Role}, nil
}
