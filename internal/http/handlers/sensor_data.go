package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/middleware"
	"github.com/damayanti/damayanti-be/internal/models"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

// SensorDataHandler serves readings. Devices post without credentials, so
// writes only stamp the audit columns when a user is present.
type SensorDataHandler struct {
	resource
	store storage.SensorStore
}

func NewSensorDataHandler(store storage.SensorStore, log logrus.FieldLogger) *SensorDataHandler {
	return &SensorDataHandler{resource: resource{name: "Sensor data", log: log}, store: store}
}

func (h *SensorDataHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	containerID, err := queryUUID(r, "container_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	from, to, err := dateRange(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := storage.SensorFilter{ContainerID: containerID, From: from, To: to}

	readings, err := h.store.ListReadings(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	total, err := h.store.CountReadings(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.List(w, "sensor_data", readings, respond.NewPagination(total, page.Limit, page.Offset))
}

func (h *SensorDataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	reading, err := h.store.FindReading(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", reading)
}

func (h *SensorDataHandler) Latest(w http.ResponseWriter, r *http.Request) {
	containerID, err := pathID(r, "containerID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	reading, err := h.store.LatestReading(r.Context(), containerID)
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "No sensor data found for this container")
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "", reading)
}

func (h *SensorDataHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSensorReadingRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	actor := models.ActorID(middleware.CurrentUser(r.Context()))
	created, err := h.store.CreateReading(r.Context(), models.SensorReading{
		ID:          uuid.New(),
		ContainerID: req.ContainerID,
		StudentID:   uuid.NullUUID{UUID: req.StudentID, Valid: true},
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Gas:         *req.Gas,
		PH:          *req.PH,
		Status:      req.Status,
		Audit:       models.Audit{CreatedBy: actor, ModifiedBy: actor},
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Sensor data created successfully", created)
}

func (h *SensorDataHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req dto.UpdateSensorReadingRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	update := storage.SensorReadingUpdate{
		ContainerID: req.ContainerID,
		StudentID:   req.StudentID,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Gas:         req.Gas,
		PH:          req.PH,
		Status:      req.Status,
	}
	updated, err := h.store.UpdateReading(r.Context(), id, update, models.ActorID(middleware.CurrentUser(r.Context())))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sensor data updated successfully", updated)
}

func (h *SensorDataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.DeleteReading(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Sensor data deleted successfully", nil)
}
