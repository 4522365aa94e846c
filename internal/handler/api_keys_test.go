package handler

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haatos/algosnip/internal/store"
	"github.com/haatos/algosnip/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func generateAPIKey() *store.APIKey {
	return &store.APIKey{
		ID:        rand.Int63(),
		Value:     uuid.NewString(),
		CreatedOn: time.Now().UTC(),
	}
}

func TestAPIKeyHandler_GetAPIKeys(t *testing.T) {
	t.Run("success - api keys are listed", func(t *testing.T) {
		// arrange
		expected := generateAPIKey()
		mockService := new(testutil.MockAPIKeyService)
		mockService.On("ListAPIKeys", mock.Anything).Return([]*store.APIKey{expected}, nil)
		h := NewAPIKeyHandler(mockService)
		req := httptest.NewRequest(http.MethodGet, "/api/keys", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		c := e.NewContext(req, rec)

		// act
		err := h.GetAPIKeys(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		res := []APIKeyResponse{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
		assert.Equal(t, expected.ID, res[0].ID)
		assert.Equal(t, expected.Value, res[0].Value)
	})
}

func TestAPIKeyHandler_PostAPIKey(t *testing.T) {
	t.Run("success - api key is created", func(t *testing.T) {
		// arrange
		expected := generateAPIKey()
		mockService := new(testutil.MockAPIKeyService)
		mockService.On("CreateAPIKey", mock.Anything).Return(expected, nil)
		h := NewAPIKeyHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/keys", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		c := e.NewContext(req, rec)

		// act
		err := h.PostAPIKey(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		res := new(APIKeyResponse)
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), res))
		assert.Equal(t, expected.Value, res.Value)
	})
	t.Run("failure - creation error is reported", func(t *testing.T) {
		// arrange
		mockService := new(testutil.MockAPIKeyService)
		mockService.On("CreateAPIKey", mock.Anything).Return(nil, assert.AnError)
		h := NewAPIKeyHandler(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/keys", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		c := e.NewContext(req, rec)

		// act
		err := h.PostAPIKey(c)

		// assert
		assert.Error(t, err)
		echoErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, echoErr.Code)
	})
}

func TestAPIKeyHandler_DeleteAPIKey(t *testing.T) {
	t.Run("success - api key is deleted", func(t *testing.T) {
		// arrange
		ak := generateAPIKey()
		mockService := new(testutil.MockAPIKeyService)
		mockService.On("DeleteAPIKey", mock.Anything, ak.ID).Return(nil)
		h := NewAPIKeyHandler(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(strconv.FormatInt(ak.ID, 10))

		// act
		err := h.DeleteAPIKey(c)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("failure - unknown api key id", func(t *testing.T) {
		// arrange
		mockService := new(testutil.MockAPIKeyService)
		mockService.On("DeleteAPIKey", mock.Anything, int64(999)).Return(sql.ErrNoRows)
		h := NewAPIKeyHandler(mockService)
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		e := echo.New()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")

		// act
		err := h.DeleteAPIKey(c)

		// assert
		assert.Error(t, err)
		echoErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, echoErr.Code)
	})
}
