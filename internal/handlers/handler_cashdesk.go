package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/poscore/cashdesk_app/internal/apperrors"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/poscore/cashdesk_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashdeskHandler handles HTTP requests related to the cash drawer ledger.
type cashdeskHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newCashdeskHandler creates a new cashdeskHandler.
func newCashdeskHandler(ledgerService portssvc.LedgerSvcFacade) *cashdeskHandler {
	return &cashdeskHandler{
		ledgerService: ledgerService,
	}
}

// recordDeposit godoc
// @Summary Record a cash deposit
// @Description Appends a positive CASH_IN movement to the drawer ledger
// @Tags cashdesk
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.MovementResponse "Recorded movement"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Router /cashdesk/deposits [post]
func (h *cashdeskHandler) recordDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "RecordDeposit", err)
		return
	}

	movement, err := h.ledgerService.RecordDeposit(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record deposit")
		return
	}

	logger.Info("Deposit recorded", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// recordWithdrawal godoc
// @Summary Record a cash withdrawal
// @Description Appends a negative CASH_OUT movement after an atomic balance check
// @Tags cashdesk
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.MovementResponse "Recorded movement"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 409 {object} map[string]string "Insufficient drawer balance"
// @Failure 500 {object} map[string]string "Failed to record withdrawal"
// @Router /cashdesk/withdrawals [post]
func (h *cashdeskHandler) recordWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "RecordWithdrawal", err)
		return
	}

	movement, err := h.ledgerService.RecordWithdrawal(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record withdrawal")
		return
	}

	logger.Info("Withdrawal recorded", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// recordSale godoc
// @Summary Record a cash sale
// @Description Appends a SALE movement posted by the order subsystem when a cash-settled order closes
// @Tags cashdesk
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.MovementResponse "Recorded movement"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /cashdesk/sales [post]
func (h *cashdeskHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "RecordSale", err)
		return
	}

	movement, err := h.ledgerService.RecordSale(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("movement_id", movement.MovementID), slog.String("order_id", req.OrderID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// recordRefund godoc
// @Summary Record a cash refund
// @Description Appends a negative REFUND movement against the drawer
// @Tags cashdesk
// @Accept  json
// @Produce  json
// @Param   refund body dto.CreateRefundRequest true "Refund details"
// @Success 201 {object} dto.MovementResponse "Recorded movement"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 500 {object} map[string]string "Failed to record refund"
// @Router /cashdesk/refunds [post]
func (h *cashdeskHandler) recordRefund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "RecordRefund", err)
		return
	}

	movement, err := h.ledgerService.RecordRefund(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record refund")
		return
	}

	logger.Info("Refund recorded", slog.String("movement_id", movement.MovementID), slog.String("order_id", req.OrderID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// recordCorrection godoc
// @Summary Record a manual correction
// @Description Appends a CORRECTION movement keeping the operator-supplied sign
// @Tags cashdesk
// @Accept  json
// @Produce  json
// @Param   correction body dto.CreateCorrectionRequest true "Correction details"
// @Success 201 {object} dto.MovementResponse "Recorded movement"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 500 {object} map[string]string "Failed to record correction"
// @Router /cashdesk/corrections [post]
func (h *cashdeskHandler) recordCorrection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, "RecordCorrection", err)
		return
	}

	movement, err := h.ledgerService.RecordCorrection(c.Request.Context(), req)
	if err != nil {
		respondLedgerError(c, logger, err, "Failed to record correction")
		return
	}

	logger.Info("Correction recorded", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// getBalance godoc
// @Summary Get the current drawer balance
// @Description Returns the signed sum of all movements not yet swept into a closure
// @Tags cashdesk
// @Produce  json
// @Success 200 {object} dto.BalanceResponse "Current unassigned balance"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /cashdesk/balance [get]
func (h *cashdeskHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.ledgerService.GetUnassignedBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get unassigned balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Balance: balance,
		AsOf:    time.Now().UTC(),
	})
}

// listMovements godoc
// @Summary List cash movements
// @Description Retrieves a paginated movement listing, newest first
// @Tags cashdesk
// @Produce  json
// @Param   unassignedOnly query bool false "Only movements not yet swept into a closure"
// @Param   closureID query string false "Only movements assigned to this closure"
// @Param   limit query int false "Page size (default 50, max 200)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMovementsResponse "Movement listing"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Router /cashdesk/movements [get]
func (h *cashdeskHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter portsrepo.MovementListFilter
	if raw := c.Query("unassignedOnly"); raw != "" {
		unassignedOnly, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unassignedOnly parameter"})
			return
		}
		filter.UnassignedOnly = unassignedOnly
	}
	if closureID := c.Query("closureID"); closureID != "" {
		filter.ClosureID = &closureID
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

	movements, newToken, err := h.ledgerService.ListMovements(c.Request.Context(), filter, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid movement listing request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list movements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: newToken,
	})
}

// respondLedgerError maps ledger service errors onto HTTP statuses.
func respondLedgerError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on ledger write", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		logger.Warn("Withdrawal rejected for insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

// registerCashdeskRoutes registers cash drawer specific routes
func registerCashdeskRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	cashdeskHandler := newCashdeskHandler(ledgerService)

	cashdesk := group.Group("/cashdesk")
	{
		cashdesk.POST("/deposits", cashdeskHandler.recordDeposit)
		cashdesk.POST("/withdrawals", cashdeskHandler.recordWithdrawal)
		cashdesk.POST("/sales", cashdeskHandler.recordSale)
		cashdesk.POST("/refunds", cashdeskHandler.recordRefund)
		cashdesk.POST("/corrections", cashdeskHandler.recordCorrection)
		cashdesk.GET("/balance", cashdeskHandler.getBalance)
		cashdesk.GET("/movements", cashdeskHandler.listMovements)
	}
}
