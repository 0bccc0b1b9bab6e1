package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

type SheepHandler struct {
	resource
	store storage.SheepStore
}

func NewSheepHandler(store storage.SheepStore, log logrus.FieldLogger) *SheepHandler {
	return &SheepHandler{resource: resource{name: "Sheep", log: log}, store: store}
}

func (h *SheepHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	sheep, err := h.store.ListSheep(r.Context(), name, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountSheep(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "sheeps", sheep, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *SheepHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sheep, err := h.store.FindSheep(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", sheep)
}

func (h *SheepHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSheepRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateSheep(r.Context(), models.Sheep{
		ID:    uuid.New(),
		Name:  req.Name,
		Age:   req.AgeOrDefault(),
		Audit: models.Audit{CreatedBy: actor, ModifiedBy: actor},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Sheep created successfully", created)
}

func (h *SheepHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateSheepRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.store.UpdateSheep(r.Context(), id, storage.SheepUpdate{Name: req.Name, Age: req.Age},
		models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sheep updated successfully", updated)
}

func (h *SheepHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteSheep(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sheep deleted successfully", nil)
}
