package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/auth"
	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models/dto"
)

// Authenticator is the login flow the handler delegates to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler owns the login and profile endpoints.
type AuthHandler struct {
	resource
	auth Authenticator
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authn Authenticator, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{resource: resource{name: "User", log: log}, auth: authn}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.fail(w, r, err)
		return
	}
	respond.Raw(w, http.StatusOK, dto.LoginResponse{AccessToken: token})
}

// Me returns the caller's own account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, middleware.MsgNoToken)
		return
	}
	respond.JSON(w, http.StatusOK, "", user)
}
