package http

import (
	"net/http"
	"strconv"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/ciatoslog/dispatch/services/drivers"
	"github.com/labstack/echo/v4"
)

// DriversHandler handles HTTP requests for driver operations
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new driver HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{
		driverUC: driverUC,
	}
}

func (h *DriversHandler) fail(c echo.Context, msg string, err error) error {
	logger.Error(msg,
		logger.String("driver_id", c.Param("driverID")),
		logger.Err(err))
	nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
	return utils.DomainErrorResponse(c, err)
}

// OnboardDriver registers a transport partner
func (h *DriversHandler) OnboardDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.OnboardDriver")

	var draft models.DriverDraft
	if err := c.Bind(&draft); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.OnboardDriver(c.Request().Context(), draft)
	if err != nil {
		return h.fail(c, "Failed to onboard driver", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver onboarded successfully", driver)
}

// GetDriver returns one driver with its route history
func (h *DriversHandler) GetDriver(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Drivers.GetDriver")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		return h.fail(c, "Failed to get driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// ListDrivers returns the drivers matching the search query
func (h *DriversHandler) ListDrivers(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Drivers.ListDrivers")

	list, err := h.driverUC.ListDrivers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return h.fail(c, "Failed to list drivers", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", list)
}

// SetDriverStatus changes a driver's availability
func (h *DriversHandler) SetDriverStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.SetDriverStatus")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req models.DriverStatusRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.SetDriverStatus(c.Request().Context(), driverID, req.Status)
	if err != nil {
		return h.fail(c, "Failed to change driver status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated successfully", driver)
}

// SetDocuments flags the driver's documents as expired or valid
func (h *DriversHandler) SetDocuments(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.SetDocuments")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req models.DocumentsRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	driver, err := h.driverUC.SetDocumentsExpired(c.Request().Context(), driverID, req.Expired)
	if err != nil {
		return h.fail(c, "Failed to update driver documents", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver documents updated successfully", driver)
}

// RecordManualRoute declares a route the driver runs
func (h *DriversHandler) RecordManualRoute(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Drivers.RecordManualRoute")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req models.ManualRouteRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	entry, err := h.driverUC.RecordManualRoute(c.Request().Context(), driverID, req)
	if err != nil {
		return h.fail(c, "Failed to record route", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Route recorded successfully", entry)
}

// RemoveRoute drops one history entry; a stale entry id still succeeds
func (h *DriversHandler) RemoveRoute(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Drivers.RemoveRoute")

	driverID, entryID := c.Param("driverID"), c.Param("entryID")
	if driverID == "" || entryID == "" {
		return utils.BadRequestResponse(c, "Driver ID and entry ID are required")
	}

	driver, err := h.driverUC.RemoveRoute(c.Request().Context(), driverID, entryID)
	if err != nil {
		return h.fail(c, "Failed to remove route", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route removed successfully", driver)
}

// SummarizeTopRoutes returns the driver's most frequent routes
func (h *DriversHandler) SummarizeTopRoutes(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Drivers.SummarizeTopRoutes")

	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return utils.BadRequestResponse(c, "Limit must be a non-negative integer")
		}
		limit = n
	}

	summary, err := h.driverUC.SummarizeTopRoutes(c.Request().Context(), driverID, limit)
	if err != nil {
		return h.fail(c, "Failed to summarize routes", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route summary retrieved successfully", summary)
}
