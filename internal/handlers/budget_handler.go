package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles monthly budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	reportService services.ReportServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	reportService services.ReportServiceInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		reportService: reportService,
	}
}

// SetBudget creates or replaces the limit for one category and month. An
// empty category addresses the whole-ledger limit.
func (h *BudgetHandler) SetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SetBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	budget, err := h.budgetService.SetBudget(userID, req.Category, req.Month, amount)
	if err != nil {
		// The only lookup performed during set is the category check
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{
		Budget:  budget,
		Message: "Budget set successfully",
	})
}

// GetBudgetOverview returns the month's budgets evaluated against actual
// spend: one line per configured limit, global line first
func (h *BudgetHandler) GetBudgetOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.BudgetQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, apierrors.BudgetInvalidMonth)
	}

	report, budgetLines, err := h.reportService.GetMonthlyReport(c.Request().Context(), userID, params.Month)
	if err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetOverviewResponse{
		Month:   report.Month,
		Budgets: budgetLines,
	})
}

// DeleteBudget removes the limit for one category and month
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	category := c.QueryParam("category")
	month := c.QueryParam("month")

	if err := h.budgetService.DeleteBudget(userID, category, month); err != nil {
		return h.mapBudgetError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BudgetHandler) mapBudgetError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.BudgetNotFound)
	case errors.Is(err, models.ErrInvalidMonthToken):
		return SendError(c, apierrors.BudgetInvalidMonth)
	case errors.Is(err, models.ErrInvalidBudgetAmount):
		return SendError(c, apierrors.BudgetInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}
