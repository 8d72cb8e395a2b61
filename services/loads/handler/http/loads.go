package http

import (
	"net/http"

	"github.com/ciatoslog/dispatch/internal/pkg/logger"
	"github.com/ciatoslog/dispatch/internal/pkg/models"
	nrpkg "github.com/ciatoslog/dispatch/internal/pkg/newrelic"
	"github.com/ciatoslog/dispatch/internal/utils"
	"github.com/ciatoslog/dispatch/services/loads"
	"github.com/labstack/echo/v4"
)

// LoadsHandler handles HTTP requests for load operations
type LoadsHandler struct {
	loadUC loads.LoadUC
}

// NewLoadsHandler creates a new load HTTP handler
func NewLoadsHandler(loadUC loads.LoadUC) *LoadsHandler {
	return &LoadsHandler{
		loadUC: loadUC,
	}
}

// failed logs a usecase error and answers with its mapped status
func failed(c echo.Context, msg string, loadID string, err error) error {
	logger.Error(msg,
		logger.String("load_id", loadID),
		logger.Err(err))
	nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
	return utils.DomainErrorResponse(c, err)
}

// CreateLoad opens a new load in negotiation
func (h *LoadsHandler) CreateLoad(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.CreateLoad")

	var draft models.LoadDraft
	if err := c.Bind(&draft); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	load, err := h.loadUC.CreateLoad(c.Request().Context(), draft)
	if err != nil {
		return failed(c, "Failed to create load", "", err)
	}

	nrpkg.AddTransactionAttribute(txn, "load.id", load.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Load created successfully", load)
}

// GetLoad returns one load
func (h *LoadsHandler) GetLoad(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.GetLoad")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	load, err := h.loadUC.GetLoad(c.Request().Context(), loadID)
	if err != nil {
		return failed(c, "Failed to get load", loadID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Load retrieved successfully", load)
}

// ListLoads returns the load book, filtered by the optional status query
func (h *LoadsHandler) ListLoads(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.ListLoads")

	list, err := h.loadUC.ListLoads(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return failed(c, "Failed to list loads", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Loads retrieved successfully", list)
}

// Board returns the pipeline columns
func (h *LoadsHandler) Board(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.Board")

	board, err := h.loadUC.Board(c.Request().Context())
	if err != nil {
		return failed(c, "Failed to build board", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Board retrieved successfully", board)
}

// Summary returns the financial overview
func (h *LoadsHandler) Summary(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.Summary")

	summary, err := h.loadUC.Summary(c.Request().Context())
	if err != nil {
		return failed(c, "Failed to summarize loads", "", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

// SetStatus moves a load to another column
func (h *LoadsHandler) SetStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.SetStatus")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	var req models.StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	nrpkg.AddTransactionAttribute(txn, "load.id", loadID)
	nrpkg.AddTransactionAttribute(txn, "load.target_status", req.Status)

	load, err := h.loadUC.SetStatus(c.Request().Context(), loadID, req.Status)
	if err != nil {
		return failed(c, "Failed to change load status", loadID, err)
	}

	logger.Info("Load status changed",
		logger.String("load_id", loadID),
		logger.String("status", string(load.Status)))
	return utils.SuccessResponse(c, http.StatusOK, "Load status updated successfully", load)
}

// AssignDriver attaches a driver and the payment split to a load
func (h *LoadsHandler) AssignDriver(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.AssignDriver")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	nrpkg.AddTransactionAttribute(txn, "load.id", loadID)
	nrpkg.AddTransactionAttribute(txn, "driver.id", req.DriverID)

	load, err := h.loadUC.AssignDriver(c.Request().Context(), loadID, req)
	if err != nil {
		return failed(c, "Failed to assign driver", loadID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned successfully", load)
}

// FinalizeDelivery marks a load delivered
func (h *LoadsHandler) FinalizeDelivery(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.FinalizeDelivery")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	load, err := h.loadUC.FinalizeDelivery(c.Request().Context(), loadID)
	if err != nil {
		return failed(c, "Failed to finalize delivery", loadID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Delivery finalized successfully", load)
}

// CancelLoad cancels a load
func (h *LoadsHandler) CancelLoad(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.CancelLoad")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	load, err := h.loadUC.CancelLoad(c.Request().Context(), loadID)
	if err != nil {
		return failed(c, "Failed to cancel load", loadID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Load cancelled successfully", load)
}

// ListEvents returns the journaled history of a load
func (h *LoadsHandler) ListEvents(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Loads.ListEvents")

	loadID := c.Param("loadID")
	if loadID == "" {
		return utils.BadRequestResponse(c, "Load ID is required")
	}

	events, err := h.loadUC.ListEvents(c.Request().Context(), loadID)
	if err != nil {
		return failed(c, "Failed to list load events", loadID, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Load events retrieved successfully", events)
}
