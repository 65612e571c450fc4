package dto

import (
	"fintrack/internal/models"
)

// Budget Request DTOs

// SetBudgetRequest represents the request payload for setting a monthly limit.
// An empty category sets the whole-ledger limit.
type SetBudgetRequest struct {
	Category string `json:"category" validate:"omitempty,min=1,max=100"`
	Month    string `json:"month" validate:"required,month_token"`
	Amount   string `json:"amount" validate:"required"`
}

// BudgetQueryParams contains query options for budget listings
type BudgetQueryParams struct {
	Month string `query:"month" validate:"omitempty,month_token"`
}

// Budget Response DTOs

// BudgetResponse represents a single budget row in API responses
type BudgetResponse struct {
	Budget  *models.Budget `json:"budget"`
	Message string         `json:"message,omitempty"`
}

// BudgetOverviewResponse represents evaluated budget lines for one month
type BudgetOverviewResponse struct {
	Month   string              `json:"month"`
	Budgets []models.BudgetLine `json:"budgets"`
}
