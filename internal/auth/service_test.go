package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	findErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]models.User{}}
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) CreateUser(_ context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func newTestService(t *testing.T) (*Service, *fakeUsers, *TokenManager) {
	t.Helper()
	users := newFakeUsers()
	tokens := NewTokenManager("secret", "damayanti-api", time.Hour)
	log, _ := test.NewNullLogger()
	return NewService(users, tokens, log), users, tokens
}

func TestLoginIssuesTokenForUser(t *testing.T) {
	svc, users, tokens := newTestService(t)
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	user, err := users.CreateUser(context.Background(), models.User{Email: "a@x.com", FullName: "Ada", PasswordHash: hash})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "  A@X.com ", "secret1")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, users, _ := newTestService(t)
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	_, err = users.CreateUser(context.Background(), models.User{Email: "a@x.com", FullName: "Ada", PasswordHash: hash})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "a@x.com", "nope")
	_, unknownEmail := svc.Login(context.Background(), "b@x.com", "secret1")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginPropagatesStoreFailure(t *testing.T) {
	svc, users, _ := newTestService(t)
	users.findErr = errors.New("connection reset")

	_, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestBootstrapCreatesAdminOnce(t *testing.T) {
	svc, users, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Bootstrap(ctx, "A@x.com", "secret1", "Admin")
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := users.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, CheckPassword(admin.PasswordHash, "secret1"))

	created, err = svc.Bootstrap(ctx, "a@x.com", "other", "Admin")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestBootstrapSkipsWithoutCredentials(t *testing.T) {
	svc, users, _ := newTestService(t)

	created, err := svc.Bootstrap(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, users.byEmail)
}

func TestBootstrapLogsCreation(t *testing.T) {
	log, hook := test.NewNullLogger()
	svc := NewService(newFakeUsers(), NewTokenManager("secret", "damayanti-api", time.Hour), log)

	_, err := svc.Bootstrap(context.Background(), "a@x.com", "secret1", "")
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "a@x.com", hook.LastEntry().Data["email"])
}
