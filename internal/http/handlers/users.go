package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/auth"
	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// UserHandler manages accounts. Every route is mounted behind the admin gate.
type UserHandler struct {
	resource
	store storage.UserStore
}

func NewUserHandler(store storage.UserStore, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{resource: resource{name: "User", log: log}, store: store}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	users, err := h.store.ListUsers(r.Context(), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "users", users, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.store.FindUserByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateUser(r.Context(), models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.RoleOrDefault(),
		PasswordHash: hash,
		CreatedBy:    actor,
		ModifiedBy:   actor,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "User created successfully", created)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	update := storage.UserUpdate{Email: req.Email, FullName: req.FullName, Role: req.Role}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		update.PasswordHash = &hash
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	updated, err := h.store.UpdateUser(r.Context(), id, update, actor.UUID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User updated successfully", updated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if caller, ok := middleware.UserFromContext(r.Context()); ok && caller.ID == id {
		respond.Error(w, http.StatusBadRequest, "You cannot delete your own account")
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User deleted successfully", nil)
}
