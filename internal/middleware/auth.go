package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/auth"
	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/storage"
)

const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid token."
	MsgAdminOnly    = "Access denied. Admin privileges required."
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// UserFinder loads the account a token refers to.
type UserFinder interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

type userKey struct{}

var errNoToken = errors.New("no bearer token")

// Authenticator resolves bearer tokens into stored users.
type Authenticator struct {
	tokens TokenVerifier
	users  UserFinder
	log    logrus.FieldLogger
}

func NewAuthenticator(tokens TokenVerifier, users UserFinder, log logrus.FieldLogger) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, log: log}
}

// RequireUser rejects requests without a valid token for an existing user.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.identify(r)
		switch {
		case err == nil:
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		case errors.Is(err, errNoToken):
			respond.Error(w, http.StatusUnauthorized, MsgNoToken)
		case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken), errors.Is(err, storage.ErrNotFound):
			a.log.WithError(err).Debug("rejected bearer token")
			respond.Error(w, http.StatusUnauthorized, MsgInvalidToken)
		default:
			a.log.WithError(err).Error("authenticate request")
			respond.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}
	})
}

// RequireAdmin runs RequireUser and then demands the administrator role.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(adminOnly(next))
}

// adminOnly must only be mounted behind RequireUser.
func adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			respond.Error(w, http.StatusForbidden, MsgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// OptionalUser attaches the user when the token checks out and otherwise proceeds anonymously.
func (a *Authenticator) OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.identify(r)
		if err != nil {
			if !errors.Is(err, errNoToken) {
				a.log.WithError(err).Debug("optional auth failed")
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Authenticator) identify(r *http.Request) (models.User, error) {
	raw, ok := bearerToken(r)
	if !ok {
		return models.User{}, errNoToken
	}
	claims, err := a.tokens.Verify(raw)
	if err != nil {
		return models.User{}, err
	}
	return a.users.FindUserByID(r.Context(), claims.UserID)
}

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the user attached by one of the auth middlewares.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey{}).(models.User)
	return user, ok
}

// CurrentUser is UserFromContext as a pointer, nil for anonymous requests.
func CurrentUser(ctx context.Context) *models.User {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil
	}
	return &user
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
