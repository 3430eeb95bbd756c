package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/services"
)

func TestServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrEmptyText, http.StatusBadRequest},
		{services.ErrInvalidParent, http.StatusBadRequest},
		{services.ErrSelfFollow, http.StatusBadRequest},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, serviceError(tc.err), &httpErr)
		assert.Equal(t, tc.status, httpErr.Code, "mapping for %v", tc.err)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Zero(t, getUserIDFromContext(c))

	c.Set("user", &models.JwtCustomClaims{UserID: 42})
	assert.EqualValues(t, 42, getUserIDFromContext(c))
}

func TestParsePaginationBounds(t *testing.T) {
	e := echo.New()
	newCtx := func(query string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	page, limit := parsePagination(newCtx(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = parsePagination(newCtx("page=3&limit=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = parsePagination(newCtx("page=-1&limit=500"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}
