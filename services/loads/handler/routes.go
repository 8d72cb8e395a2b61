package handler

import (
	"github.com/ciatoslog/dispatch/services/loads"
	httpHandler "github.com/ciatoslog/dispatch/services/loads/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the loads service
type Handler struct {
	loadsHTTP *httpHandler.LoadsHandler
}

// NewHandler creates a new combined handler
func NewHandler(loadUC loads.LoadUC) *Handler {
	return &Handler{
		loadsHTTP: httpHandler.NewLoadsHandler(loadUC),
	}
}

// RegisterRoutes registers the load routes on api. commandMW wraps only the
// routes that change state.
func (h *Handler) RegisterRoutes(api *echo.Group, commandMW ...echo.MiddlewareFunc) {
	g := api.Group("/loads")

	g.GET("", h.loadsHTTP.ListLoads)
	g.GET("/board", h.loadsHTTP.Board)
	g.GET("/summary", h.loadsHTTP.Summary)
	g.GET("/:loadID", h.loadsHTTP.GetLoad)
	g.GET("/:loadID/events", h.loadsHTTP.ListEvents)

	g.POST("", h.loadsHTTP.CreateLoad, commandMW...)
	g.PUT("/:loadID/status", h.loadsHTTP.SetStatus, commandMW...)
	g.POST("/:loadID/assign", h.loadsHTTP.AssignDriver, commandMW...)
	g.POST("/:loadID/deliver", h.loadsHTTP.FinalizeDelivery, commandMW...)
	g.POST("/:loadID/cancel", h.loadsHTTP.CancelLoad, commandMW...)
}
