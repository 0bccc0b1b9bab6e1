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

type ReportHandler struct {
	resource
	store storage.ReportStore
}

func NewReportHandler(store storage.ReportStore, log logrus.FieldLogger) *ReportHandler {
	return &ReportHandler{resource: resource{name: "Report", log: log}, store: store}
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
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
	containerID, err := queryUUID(r, "container_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := storage.ReportFilter{StudentID: studentID, ContainerID: containerID}

	reports, err := h.store.ListReports(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountReports(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "reports", reports, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	report, err := h.store.FindReport(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", report)
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	report := models.Report{
		ID:          uuid.New(),
		StudentID:   req.StudentID,
		ContainerID: req.ContainerID,
		Notes:       req.Notes,
	}
	if req.SensorDataID != nil {
		report.SensorDataID = uuid.NullUUID{UUID: *req.SensorDataID, Valid: true}
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	report.CreatedBy, report.ModifiedBy = actor, actor

	created, err := h.store.CreateReport(r.Context(), report)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Report created successfully", created)
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateReportRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	update := storage.ReportUpdate{
		StudentID:    req.StudentID,
		ContainerID:  req.ContainerID,
		SensorDataID: req.SensorDataID,
		Notes:        req.Notes,
	}
	updated, err := h.store.UpdateReport(r.Context(), id, update, models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Report updated successfully", updated)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteReport(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Report deleted successfully", nil)
}
