package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category management HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory adds a user-defined category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, req.Type)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CategoryResponse{
		Category: category,
		Message:  "Category created successfully",
	})
}

// ListCategories returns the categories visible to the user: system defaults
// plus their own
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// DeleteCategory removes a user-defined category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) mapCategoryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthAccessDenied)
	case errors.Is(err, services.ErrSystemCategory):
		return SendError(c, apierrors.CategorySystemOwned)
	case errors.Is(err, services.ErrCategoryNameTaken):
		return SendError(c, apierrors.CategoryAlreadyExists)
	case errors.Is(err, services.ErrInvalidCategoryKind):
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Type must be income or expense"))
	case errors.Is(err, models.ErrMissingCategoryName):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("Name is required"))
	default:
		return SendSystemError(c, err)
	}
}
