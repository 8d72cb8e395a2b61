package handler

import (
	"github.com/ciatoslog/dispatch/services/reference"
	httpHandler "github.com/ciatoslog/dispatch/services/reference/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the reference service
type Handler struct {
	referenceHTTP *httpHandler.ReferenceHandler
}

// NewHandler creates a new combined handler
func NewHandler(referenceUC reference.ReferenceUC) *Handler {
	return &Handler{
		referenceHTTP: httpHandler.NewReferenceHandler(referenceUC),
	}
}

// RegisterRoutes registers the reference routes on api
func (h *Handler) RegisterRoutes(api *echo.Group, commandMW ...echo.MiddlewareFunc) {
	g := api.Group("/reference")

	g.GET("/vehicle-types", h.referenceHTTP.ListVehicleTypes)
	g.GET("/lanes", h.referenceHTTP.ListLanes)
	g.GET("/segments", h.referenceHTTP.ListSegments)
	g.GET("/commission-rules", h.referenceHTTP.ListCommissionRules)

	g.POST("/segments", h.referenceHTTP.AddSegment, commandMW...)
	g.DELETE("/segments/:name", h.referenceHTTP.RemoveSegment, commandMW...)
}
