package dto

import (
	"fintrack/internal/models"
)

// Savings Goal Request DTOs

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	TargetAmount  string `json:"target_amount" validate:"required"`
	CurrentAmount string `json:"current_amount" validate:"omitempty"`
}

// AddFundsRequest represents the request payload for adding money to a goal
type AddFundsRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// SetGoalAmountRequest represents the request payload for overwriting a goal's saved amount
type SetGoalAmountRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// Savings Goal Response DTOs

// GoalResponse represents a single goal with its progress in API responses
type GoalResponse struct {
	Goal     *models.SavingsGoal  `json:"goal"`
	Progress *models.GoalProgress `json:"progress,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// GoalListResponse represents all goals for a user with progress attached
type GoalListResponse struct {
	Goals []GoalWithProgress `json:"goals"`
}

// GoalWithProgress pairs a stored goal with its derived progress
type GoalWithProgress struct {
	Goal     models.SavingsGoal  `json:"goal"`
	Progress models.GoalProgress `json:"progress"`
}
