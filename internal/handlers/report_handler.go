package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles derived financial view HTTP requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetMonthlyReport aggregates the user's ledger for one month. Without a
// month query parameter the current month is reported.
func (h *ReportHandler) GetMonthlyReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.ReportQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}

	report, budgetLines, err := h.reportService.GetMonthlyReport(c.Request().Context(), userID, params.Month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonthToken) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MonthlyReportResponse{
		Report:  report,
		Budgets: budgetLines,
	})
}

// GetDashboard assembles the landing page payload: current month report,
// evaluated budgets, goal progress and recent transactions
func (h *ReportHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dashboard, err := h.reportService.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	goals := make([]dto.GoalWithProgress, len(dashboard.Goals))
	for i := range dashboard.Goals {
		goals[i] = dto.GoalWithProgress{
			Goal:     dashboard.Goals[i],
			Progress: dashboard.GoalProgress[i],
		}
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Report:             &dashboard.Report,
		Budgets:            dashboard.BudgetLines,
		Goals:              goals,
		RecentTransactions: dashboard.RecentTransactions,
	})
}
