package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/poscore/cashdesk_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// closureHandler handles HTTP requests related to daily closures.
type closureHandler struct {
	closureService portssvc.ClosureSvcFacade
}

// newClosureHandler creates a new closureHandler.
func newClosureHandler(closureService portssvc.ClosureSvcFacade) *closureHandler {
	return &closureHandler{
		closureService: closureService,
	}
}

// createClosure godoc
// @Summary Open a daily closure
// @Description Opens a new closure for a business date, snapshotting the day's revenue totals
// @Tags closures
// @Accept  json
// @Produce  json
// @Param   closure body dto.CreateClosureRequest true "Closure details"
// @Success 201 {object} dto.ClosureResponse "Opened closure"
// @Failure 400 {object} map[string]string "Invalid request format, date or opening balance"
// @Failure 409 {object} map[string]string "An open closure already exists for the date"
// @Failure 500 {object} map[string]string "Failed to open closure"
// @Router /closures [post]
func (h *closureHandler) createClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "CreateClosure", err)
		return
	}

	closure, err := h.closureService.CreateClosure(c.Request.Context(), req)
	if err != nil {
		respondClosureError(c, logger, err, "Failed to open closure")
		return
	}

	logger.Info("Closure created", slog.String("closure_id", closure.ClosureID))
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

// closeClosure godoc
// @Summary Close a daily closure
// @Description Sweeps all unassigned movements into the closure, computes the expected balance and difference, and marks it CLOSED
// @Tags closures
// @Accept  json
// @Produce  json
// @Param   closureID path string true "Closure ID"
// @Param   close body dto.CloseClosureRequest true "Counted drawer amount"
// @Success 200 {object} dto.ClosureResponse "Closed closure with reconciliation result"
// @Failure 400 {object} map[string]string "Invalid request format or counted amount"
// @Failure 404 {object} map[string]string "Closure not found"
// @Failure 409 {object} map[string]string "Closure is already closed"
// @Failure 500 {object} map[string]string "Failed to close closure"
// @Router /closures/{closureID}/close [post]
func (h *closureHandler) closeClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	var req dto.CloseClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "CloseClosure", err)
		return
	}

	closure, err := h.closureService.CloseClosure(c.Request.Context(), closureID, req)
	if err != nil {
		respondClosureError(c, logger, err, "Failed to close closure")
		return
	}

	logger.Info("Closure closed", slog.String("closure_id", closureID))
	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

// reconcileClosure godoc
// @Summary Mark a closed closure as reconciled
// @Description Applies the RECONCILED audit label to a CLOSED closure after back-office review
// @Tags closures
// @Accept  json
// @Produce  json
// @Param   closureID path string true "Closure ID"
// @Param   reconcile body dto.ReconcileClosureRequest true "Reviewing actor"
// @Success 200 {object} dto.ClosureResponse "Reconciled closure"
// @Failure 400 {object} map[string]string "Invalid request format or closure not in CLOSED status"
// @Failure 404 {object} map[string]string "Closure not found"
// @Failure 500 {object} map[string]string "Failed to reconcile closure"
// @Router /closures/{closureID}/reconcile [post]
func (h *closureHandler) reconcileClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	var req dto.ReconcileClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "ReconcileClosure", err)
		return
	}

	closure, err := h.closureService.MarkReconciled(c.Request.Context(), closureID, req.ActorID)
	if err != nil {
		respondClosureError(c, logger, err, "Failed to reconcile closure")
		return
	}

	logger.Info("Closure reconciled", slog.String("closure_id", closureID))
	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

// getClosure godoc
// @Summary Get a daily closure
// @Description Retrieves a closure with its reconciliation details by ID
// @Tags closures
// @Produce  json
// @Param   closureID path string true "Closure ID"
// @Success 200 {object} dto.ClosureResponse "Closure details"
// @Failure 404 {object} map[string]string "Closure not found"
// @Failure 500 {object} map[string]string "Failed to retrieve closure"
// @Router /closures/{closureID} [get]
func (h *closureHandler) getClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	closureID := c.Param("closureID")

	closure, err := h.closureService.GetClosureByID(c.Request.Context(), closureID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Closure not found", slog.String("closure_id", closureID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Closure not found"})
			return
		}
		logger.Error("Failed to get closure from service", slog.String("error", err.Error()), slog.String("closure_id", closureID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve closure"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

// listClosures godoc
// @Summary List daily closures
// @Description Retrieves a paginated closure listing, newest business date first
// @Tags closures
// @Produce  json
// @Param   from query string false "Inclusive lower business date bound (YYYY-MM-DD)"
// @Param   to query string false "Inclusive upper business date bound (YYYY-MM-DD)"
// @Param   status query string false "Status filter (OPEN, CLOSED, RECONCILED)"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListClosuresResponse "Closure listing"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list closures"
// @Router /closures [get]
func (h *closureHandler) listClosures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter portsrepo.ClosureListFilter
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.ClosureStatus(raw)
		switch status {
		case domain.ClosureOpen, domain.ClosureClosed, domain.ClosureReconciled:
			filter.Status = &status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	closures, newToken, err := h.closureService.ListClosures(c.Request.Context(), filter, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid closure listing request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list closures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closures"})
		return
	}

	c.JSON(http.StatusOK, dto.ListClosuresResponse{
		Closures:  dto.ToClosureResponses(closures),
		NextToken: newToken,
	})
}

// respondClosureError maps closure service errors onto HTTP statuses.
func respondClosureError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on closure operation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Closure not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Closure not found"})
	case errors.Is(err, apperrors.ErrDuplicateOpenClosure), errors.Is(err, apperrors.ErrAlreadyClosed):
		logger.Warn("Closure state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

// registerClosureRoutes registers daily closure specific routes
func registerClosureRoutes(group *gin.RouterGroup, closureService portssvc.ClosureSvcFacade) {
	closureHandler := newClosureHandler(closureService)

	closures := group.Group("/closures")
	{
		closures.POST("", closureHandler.createClosure)
		closures.GET("", closureHandler.listClosures)
		closures.GET("/:closureID", closureHandler.getClosure)
		closures.POST("/:closureID/close", closureHandler.closeClosure)
		closures.POST("/:closureID/reconcile", closureHandler.reconcileClosure)
	}
}
