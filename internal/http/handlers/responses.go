package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/damayanti/damayanti-be/internal/http/respond"
	"github.com/damayanti/damayanti-be/internal/models/dto"
	"github.com/damayanti/damayanti-be/internal/storage"
)

const (
	defaultLimit = 50
	maxLimit     = 100
	maxBodyBytes = 1 << 20
)

// resource carries the display name and logger shared by a handler's endpoints.
type resource struct {
	name string
	log  logrus.FieldLogger
}

// fail maps err onto an HTTP status. Unknown errors are logged and hidden behind a 500.
func (res resource) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, res.name+" not found")
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, res.name+" already exists")
	case errors.Is(err, storage.ErrInvalidReference):
		respond.Error(w, http.StatusBadRequest, "Referenced resource not found")
	case errors.Is(err, storage.ErrMissingField):
		respond.Error(w, http.StatusBadRequest, "Required field is missing")
	case errors.Is(err, storage.ErrInvalidValue):
		respond.Error(w, http.StatusBadRequest, "Invalid field value")
	default:
		res.log.WithFields(logrus.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
		}).WithError(err).Error("request failed")
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

type validatable interface {
	Validate() error
}

type normalizer interface {
	Normalize()
}

// decode reads a JSON body into dst, normalizes and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &dto.ValidationError{Problems: []string{decodeProblem(err)}}
	}
	if dec.More() {
		return &dto.ValidationError{Problems: []string{"invalid JSON payload"}}
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	return dst.Validate()
}

func decodeProblem(err error) string {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return typeErr.Field + " has an invalid type"
	case errors.As(err, &maxErr):
		return "request body too large"
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return strings.TrimPrefix(err.Error(), "json: ") + " is not allowed"
	case strings.HasPrefix(err.Error(), "invalid UUID"):
		return "identifiers must be valid UUIDs"
	case strings.HasPrefix(err.Error(), "parsing time"):
		return "dates must be ISO 8601"
	default:
		return "invalid JSON payload"
	}
}

func badRequest(msg string) error {
	return &dto.ValidationError{Problems: []string{msg}}
}

// pathID parses the named chi URL parameter as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, badRequest(name + " must be a valid UUID")
	}
	return id, nil
}

func parsePage(r *http.Request) (storage.Page, error) {
	page := storage.Page{Limit: defaultLimit}
	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			return page, badRequest(fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit))
		}
		page.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, badRequest("offset must be an integer greater than or equal to 0")
		}
		page.Offset = n
	}
	return page, nil
}

func queryUUID(r *http.Request, key string) (uuid.NullUUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.NullUUID{}, badRequest(key + " must be a valid UUID")
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

// queryTime accepts RFC 3339 timestamps or plain dates. A plain date used as an
// upper bound covers the whole day.
func queryTime(r *http.Request, key string, upper bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, badRequest(key + " must be an ISO 8601 date")
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func dateRange(r *http.Request) (from, to *time.Time, err error) {
	if from, err = queryTime(r, "date_from", false); err != nil {
		return nil, nil, err
	}
	if to, err = queryTime(r, "date_to", true); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
