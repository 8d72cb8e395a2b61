package requestcontext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "req-1", RequestID(WithRequestID(context.Background(), "req-1")))

	ctx := WithRequestID(context.Background(), "")
	assert.Equal(t, "", RequestID(ctx))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		check    func(t *testing.T, got string)
	}{
		{
			name:     "propagates client supplied id",
			incoming: "client-42",
			check: func(t *testing.T, got string) {
				assert.Equal(t, "client-42", got)
			},
		},
		{
			name: "propagates generated id",
			check: func(t *testing.T, got string) {
				assert.NotEmpty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(echomiddleware.RequestID(), Middleware())

			var seen string
			e.GET("/loads", func(c echo.Context) error {
				seen = RequestID(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/loads", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			tt.check(t, seen)
			assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), seen)
		})
	}
}
