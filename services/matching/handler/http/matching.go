package http

import (
	"net/http"
	"strconv"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/ciatoslog/dispatch/services/matching"
	"github.com/labstack/echo/v4"
)

// MatchingHandler handles HTTP requests for driver recommendations
type MatchingHandler struct {
	matchingUC matching.MatchingUC
}

// NewMatchingHandler creates a new matching HTTP handler
func NewMatchingHandler(matchingUC matching.MatchingUC) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: matchingUC,
	}
}

func parseLimit(c echo.Context) (int, bool) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Recommend returns the ranked drivers for a load
func (h *MatchingHandler) Recommend(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Matching.Recommend")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}
	limit, ok := parseLimit(c)
	if !ok {
		return utils.BadRequestResponse(c, "Limit must be a non-negative integer")
	}

	rec, err := h.matchingUC.Recommend(c.Request().Context(), loadID, limit)
	if err != nil {
		logger.Error("Failed to recommend drivers",
			logger.String("load_id", loadID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "matching.candidates", len(rec.Recommended))
	return utils.SuccessResponse(c, http.StatusOK, "Recommendations retrieved successfully", rec)
}

// OtherCandidates returns the eligible drivers outside the recommendation
func (h *MatchingHandler) OtherCandidates(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Matching.OtherCandidates")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}
	others, err := h.matchingUC.OtherEligible(c.Request().Context(), loadID, c.QueryParam("search"))
	if err != nil {
		logger.Error("Failed to list candidates",
			logger.String("load_id", loadID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Candidates retrieved successfully", others)
}
