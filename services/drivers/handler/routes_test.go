package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/services/drivers/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	mockDriverUC.EXPECT().ListDrivers(gomock.Any(), "abc").Return([]*models.Driver{}, nil)
	mockDriverUC.EXPECT().
		SetDriverStatus(gomock.Any(), "D1", "blocked").
		Return(&models.Driver{ID: "D1", Status: models.DriverStatusBlocked}, nil)
	mockDriverUC.EXPECT().
		SetDocumentsExpired(gomock.Any(), "D1", true).
		Return(&models.Driver{ID: "D1", DocsExpired: true}, nil)

	commandCalls := 0
	counting := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			commandCalls++
			return next(c)
		}
	}

	e := echo.New()
	NewHandler(mockDriverUC).RegisterRoutes(e.Group("/api/v1"), counting)

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/drivers?search=abc", ""},
		{http.MethodPut, "/api/v1/drivers/D1/status", `{"status":"blocked"}`},
		{http.MethodPut, "/api/v1/drivers/D1/documents", `{"expired":true}`},
	}
	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, bytes.NewBufferString(r.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, r.path)
	}

	assert.Equal(t, 2, commandCalls)
}
