package dto

import (
	"fintrack/internal/models"
)

// Report Request DTOs

// ReportQueryParams contains query options for the monthly report
type ReportQueryParams struct {
	Month string `query:"month" validate:"omitempty,month_token"`
}

// Report Response DTOs

// MonthlyReportResponse represents the full monthly report payload
type MonthlyReportResponse struct {
	Report  *models.MonthlyReport `json:"report"`
	Budgets []models.BudgetLine   `json:"budgets"`
}

// DashboardResponse represents the landing page payload: the current month's
// report, evaluated budgets, goal progress and the latest transactions.
type DashboardResponse struct {
	Report             *models.MonthlyReport `json:"report"`
	Budgets            []models.BudgetLine   `json:"budgets"`
	Goals              []GoalWithProgress    `json:"goals"`
	RecentTransactions []models.Transaction  `json:"recent_transactions"`
}
