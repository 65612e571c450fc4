package dto

import (
	"fintrack/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
	Type string `json:"type" validate:"required,oneof=income expense"`
}

// Category Response DTOs

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	Category *models.Category `json:"category"`
	Message  string           `json:"message,omitempty"`
}

// CategoryListResponse represents the categories visible to a user
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}
