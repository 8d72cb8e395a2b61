package handler

import (
	"github.com/ciatoslog/dispatch/services/matching"
	httpHandler "github.com/ciatoslog/dispatch/services/matching/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the matching service
type Handler struct {
	matchingHTTP *httpHandler.MatchingHandler
}

// NewHandler creates a new combined handler
func NewHandler(matchingUC matching.MatchingUC) *Handler {
	return &Handler{
		matchingHTTP: httpHandler.NewMatchingHandler(matchingUC),
	}
}

// RegisterRoutes registers the recommendation routes under /loads
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/loads/:loadID")
	g.GET("/recommendations", h.matchingHTTP.Recommend)
	g.GET("/candidates", h.matchingHTTP.OtherCandidates)
}
