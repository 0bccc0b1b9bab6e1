package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the slice of persistence the login flow needs.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// Service exchanges credentials for access tokens.
type Service struct {
	users  UserStore
	tokens *TokenManager
	log    logrus.FieldLogger
}

func NewService(users UserStore, tokens *TokenManager, log logrus.FieldLogger) *Service {
	return &Service{users: users, tokens: tokens, log: log}
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// compared against when the email is unknown so both failure paths pay for a bcrypt check
func fallbackHash() string {
	dummyOnce.Do(func() {
		hash, err := HashPassword("damayanti-unknown-user")
		if err == nil {
			dummyHash = hash
		}
	})
	return dummyHash
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			CheckPassword(fallbackHash(), password)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ClaimsFor(user))
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Bootstrap creates the first administrator unless a user with that email already exists.
// It reports whether a user was created.
func (s *Service) Bootstrap(ctx context.Context, email, password, fullName string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: hash password: %w", err)
	}
	if strings.TrimSpace(fullName) == "" {
		fullName = "Administrator"
	}
	_, err = s.users.CreateUser(ctx, models.User{
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	s.log.WithField("email", email).Info("bootstrapped administrator account")
	return true, nil
}
