package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciatoslog/dispatch/internal/pkg/models"
	"github.com/ciatoslog/dispatch/services/reference/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceHandler_ListVehicleTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReferenceUC := mocks.NewMockReferenceUC(ctrl)
	handler := NewReferenceHandler(mockReferenceUC)

	mockReferenceUC.EXPECT().ListVehicleTypes(gomock.Any()).
		Return([]models.VehicleType{{Name: "Truck", CapacityTons: 14}}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, handler.ListVehicleTypes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Len(t, response["data"], 1)
}

func TestReferenceHandler_AddSegment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.MockReferenceUC)
		wantStatus int
	}{
		{
			name: "added",
			body: `{"name":"Química"}`,
			setupMock: func(m *mocks.MockReferenceUC) {
				m.EXPECT().AddSegment(gomock.Any(), "Química").Return([]string{"Bebidas", "Química"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "blank",
			body: `{"name":"  "}`,
			setupMock: func(m *mocks.MockReferenceUC) {
				m.EXPECT().AddSegment(gomock.Any(), "  ").Return(nil, models.ErrInvalidDraft)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed",
			body:       `{"name":`,
			setupMock:  func(m *mocks.MockReferenceUC) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReferenceUC := mocks.NewMockReferenceUC(ctrl)
			tt.setupMock(mockReferenceUC)
			handler := NewReferenceHandler(mockReferenceUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, handler.AddSegment(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReferenceHandler_RemoveSegment_Unescapes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReferenceUC := mocks.NewMockReferenceUC(ctrl)
	handler := NewReferenceHandler(mockReferenceUC)

	mockReferenceUC.EXPECT().RemoveSegment(gomock.Any(), "Carga Viva").Return([]string{}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("name")
	c.SetParamValues("Carga%20Viva")

	require.NoError(t, handler.RemoveSegment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
