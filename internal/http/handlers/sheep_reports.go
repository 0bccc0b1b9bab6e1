package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

const defaultRecentLimit = 10

type SheepReportHandler struct {
	resource
	store storage.SheepReportStore
}

func NewSheepReportHandler(store storage.SheepReportStore, log logrus.FieldLogger) *SheepReportHandler {
	return &SheepReportHandler{resource: resource{name: "Sheep report", log: log}, store: store}
}

func (h *SheepReportHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	sheepID, err := queryUUID(r, "sheep_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := storage.SheepReportFilter{
		SheepID: sheepID,
		Status:  strings.TrimSpace(r.URL.Query().Get("status")),
		From:    from,
		To:      to,
	}

	reports, err := h.store.ListSheepReports(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountSheepReports(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "sheep_reports", reports, respond.NewPagination(total, page.Limit, page.Offset))
}

// Recent lists the latest feedings with the status named in the path.
func (h *SheepReportHandler) Recent(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(chi.URLParam(r, "status"))
	if status == "" {
		h.fail(w, r, badRequest("status is required"))
		return
	}
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			h.fail(w, r, badRequest("limit must be an integer between 1 and 100"))
			return
		}
		limit = n
	}
	reports, err := h.store.RecentSheepReports(r.Context(), status, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", reports)
}

func (h *SheepReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	report, err := h.store.FindSheepReport(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", report)
}

func (h *SheepReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSheepReportRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateSheepReport(r.Context(), models.SheepReport{
		ID:          uuid.New(),
		SheepID:     req.SheepID,
		FeedingTime: *req.FeedingTime,
		Status:      req.Status,
		Audit:       models.Audit{CreatedBy: actor, ModifiedBy: actor},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Sheep report created successfully", created)
}

func (h *SheepReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateSheepReportRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	update := storage.SheepReportUpdate{SheepID: req.SheepID, FeedingTime: req.FeedingTime, Status: req.Status}
	updated, err := h.store.UpdateSheepReport(r.Context(), id, update, models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sheep report updated successfully", updated)
}

func (h *SheepReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteSheepReport(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sheep report deleted successfully", nil)
}
