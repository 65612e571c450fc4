package dto

import (
	"fintrack/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"omitempty,oneof=income expense"`
	Description string `json:"description" validate:"max=255"`
	Date        string `json:"date" validate:"required,iso_date"`
}

// UpdateTransactionRequest represents the request payload for editing a transaction
type UpdateTransactionRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"omitempty,oneof=income expense"`
	Description string `json:"description" validate:"max=255"`
	Date        string `json:"date" validate:"required,iso_date"`
}

// TransactionQueryParams contains filtering options for transaction queries
type TransactionQueryParams struct {
	StartDate string `query:"startDate" validate:"omitempty,iso_date"`
	EndDate   string `query:"endDate" validate:"omitempty,iso_date"`
	Month     string `query:"month" validate:"omitempty,month_token"`
	Category  string `query:"category"`
	Type      string `query:"type" validate:"omitempty,oneof=income expense"`
	Offset    int    `query:"offset" validate:"min=0"`
	Limit     int    `query:"limit" validate:"min=0,max=500"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message,omitempty"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
