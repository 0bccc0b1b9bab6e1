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

type StudentHandler struct {
	resource
	store storage.StudentStore
}

func NewStudentHandler(store storage.StudentStore, log logrus.FieldLogger) *StudentHandler {
	return &StudentHandler{resource: resource{name: "Student", log: log}, store: store}
}

// List filters by a case-insensitive full_name fragment.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	name := strings.TrimSpace(r.URL.Query().Get("full_name"))
	students, err := h.store.ListStudents(r.Context(), name, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountStudents(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "students", students, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	student, err := h.store.FindStudent(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", student)
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStudentRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateStudent(r.Context(), models.Student{
		ID:       uuid.New(),
		FullName: req.FullName,
		Audit:    models.Audit{CreatedBy: actor, ModifiedBy: actor},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Student created successfully", created)
}

func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateStudentRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	updated, err := h.store.UpdateStudent(r.Context(), id, storage.StudentUpdate{FullName: req.FullName},
		models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Student updated successfully", updated)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteStudent(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Student deleted successfully", nil)
}
