package handler

import (
	"github.com/ciatoslog/dispatch/services/drivers"
	httpHandler "github.com/ciatoslog/dispatch/services/drivers/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *httpHandler.DriversHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driversHTTP: httpHandler.NewDriversHandler(driverUC),
	}
}

// RegisterRoutes registers the driver routes on api. commandMW wraps only the
// routes that change state.
func (h *Handler) RegisterRoutes(api *echo.Group, commandMW ...echo.MiddlewareFunc) {
	g := api.Group("/drivers")

	g.GET("", h.driversHTTP.ListDrivers)
	g.GET("/:driverID", h.driversHTTP.GetDriver)
	g.GET("/:driverID/routes/summary", h.driversHTTP.SummarizeTopRoutes)

	g.POST("", h.driversHTTP.OnboardDriver, commandMW...)
	g.PUT("/:driverID/status", h.driversHTTP.SetDriverStatus, commandMW...)
	g.PUT("/:driverID/documents", h.driversHTTP.SetDocuments, commandMW...)
	g.POST("/:driverID/routes", h.driversHTTP.RecordManualRoute, commandMW...)
	g.DELETE("/:driverID/routes/:entryID", h.driversHTTP.RemoveRoute, commandMW...)
}
