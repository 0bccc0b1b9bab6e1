package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

type ContainerHandler struct {
	resource
	store storage.ContainerStore
}

func NewContainerHandler(store storage.ContainerStore, log logrus.FieldLogger) *ContainerHandler {
	return &ContainerHandler{resource: resource{name: "Container", log: log}, store: store}
}

func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	studentID, err := queryUUID(r, "student_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	containers, err := h.store.ListContainers(r.Context(), studentID, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountContainers(r.Context(), studentID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "containers", containers, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	container, err := h.store.FindContainer(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", container)
}

func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContainerRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateContainer(r.Context(), models.Container{
		ID:        uuid.New(),
		Code:      req.Code,
		Location:  req.Location,
		StudentID: uuid.NullUUID{UUID: req.StudentID, Valid: true},
		Audit:     models.Audit{CreatedBy: actor, ModifiedBy: actor},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Container created successfully", created)
}

func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateContainerRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	update := storage.ContainerUpdate{Code: req.Code, Location: req.Location, StudentID: req.StudentID}
	updated, err := h.store.UpdateContainer(r.Context(), id, update, models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Container updated successfully", updated)
}

func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteContainer(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Container deleted successfully", nil)
}
