package backlog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	repo := newFakeRepository(Task{Name: "a"})
	h := Routes(NewHandler(NewService(repo)))

	t.Run("List", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var tasks []Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		assert.Len(t, tasks, 1)
	})

	t.Run("Create", func(t *testing.T) {
		rec := serve(h, http.MethodPost, `{"Task Name":"new","Size":"S"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"acknowledged":true`)
		assert.Contains(t, rec.Body.String(), `"insertedId"`)
	})

	t.Run("CreateInvalid", func(t *testing.T) {
		rec := serve(h, http.MethodPost, `{"Size":"S"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateInvalidID", func(t *testing.T) {
		rec := serve(h, http.MethodPut, `{"id":"123","updatedItem":{"Task Name":"x"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid ID format"}`, rec.Body.String())
	})

	t.Run("UpdateEmpty", func(t *testing.T) {
		rec := serve(h, http.MethodPut, `{"id":"665f1c2e8b3a4d0012345678","updatedItem":{"_id":"665f1c2e8b3a4d0012345678"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Update", func(t *testing.T) {
		rec := serve(h, http.MethodPut, `{"id":"665f1c2e8b3a4d0012345678","updatedItem":{"Complete Date":"2024-06-01"}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"matchedCount":1`)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := serve(h, http.MethodDelete, `{"id":"665f1c2e8b3a4d0012345678"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deletedCount":1`)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		rec := serve(h, http.MethodDelete, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
