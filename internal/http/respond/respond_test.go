package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONOmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, "", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusUnauthorized, "no token provided")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"no token provided"}`, rec.Body.String())
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, "sheeps", []int{1, 2}, NewPagination(5, 2, 2))

	assert.JSONEq(t, `{"data":{"sheeps":[1,2],"pagination":{"total":5,"limit":2,"offset":2,"hasMore":true}}}`,
		rec.Body.String())
}

func TestNewPaginationLastPage(t *testing.T) {
	assert.False(t, NewPagination(4, 2, 2).HasMore)
	assert.False(t, NewPagination(0, 50, 0).HasMore)
	assert.True(t, NewPagination(51, 50, 0).HasMore)
}

func TestRawKeepsStatusWhenEncodingFails(t *testing.T) {
	rec := httptest.NewRecorder()
	Raw(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())
}
