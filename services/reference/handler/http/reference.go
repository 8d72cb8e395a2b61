package http

import (
	"net/http"
	"net/url"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/ciatoslog/dispatch/services/reference"
	"github.com/labstack/echo/v4"
)

// ReferenceHandler handles HTTP requests for the settings catalog
type ReferenceHandler struct {
	referenceUC reference.ReferenceUC
}

// NewReferenceHandler creates a new reference HTTP handler
func NewReferenceHandler(referenceUC reference.ReferenceUC) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: referenceUC,
	}
}

func (h *ReferenceHandler) respond(c echo.Context, message string, data interface{}, err error) error {
	if err != nil {
		logger.Error("Reference request failed",
			logger.String("path", c.Path()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, data)
}

func (h *ReferenceHandler) ListVehicleTypes(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Reference.ListVehicleTypes")
	out, err := h.referenceUC.ListVehicleTypes(c.Request().Context())
	return h.respond(c, "Vehicle types retrieved successfully", out, err)
}

func (h *ReferenceHandler) ListLanes(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Reference.ListLanes")
	out, err := h.referenceUC.ListLanes(c.Request().Context())
	return h.respond(c, "Lanes retrieved successfully", out, err)
}

func (h *ReferenceHandler) ListSegments(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Reference.ListSegments")
	out, err := h.referenceUC.ListSegments(c.Request().Context())
	return h.respond(c, "Segments retrieved successfully", out, err)
}

func (h *ReferenceHandler) ListCommissionRules(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Reference.ListCommissionRules")
	out, err := h.referenceUC.ListCommissionRules(c.Request().Context())
	return h.respond(c, "Commission rules retrieved successfully", out, err)
}

// AddSegment adds a market segment
func (h *ReferenceHandler) AddSegment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Reference.AddSegment")

	var req models.SegmentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	out, err := h.referenceUC.AddSegment(c.Request().Context(), req.Name)
	return h.respond(c, "Segment added successfully", out, err)
}

// RemoveSegment removes a market segment by name
func (h *ReferenceHandler) RemoveSegment(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Reference.RemoveSegment")

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil || name == "" {
		return utils.BadRequestResponse(c, "Segment name is required")
	}

	out, err := h.referenceUC.RemoveSegment(c.Request().Context(), name)
	return h.respond(c, "Segment removed successfully", out, err)
}
