package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrSystemCategory      = errors.New("system categories cannot be deleted")
	ErrCategoryNameTaken   = errors.New("a category with this name already exists")
	ErrInvalidCategoryKind = errors.New("category type must be income or expense")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

func (s *categoryService) CreateCategory(userID uuid.UUID, name, categoryType string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	categoryType = strings.ToLower(strings.TrimSpace(categoryType))

	if name == "" {
		return nil, models.ErrMissingCategoryName
	}
	if !models.IsValidTransactionType(categoryType) {
		return nil, ErrInvalidCategoryKind
	}

	category := &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: &userID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryExists) {
			return nil, ErrCategoryNameTaken
		}
		slog.Error("failed to create category",
			"user_id", userID,
			"name", name,
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("category.created", map[string]string{"type": categoryType})
	}

	slog.Info("category created",
		"category_id", category.ID,
		"user_id", userID,
		"name", name,
		"type", categoryType)

	return category, nil
}

func (s *categoryService) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListForUser(userID)
	if err != nil {
		slog.Error("failed to list categories",
			"user_id", userID,
			"error", err)
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) DeleteCategory(userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	if category.IsSystem() {
		slog.Warn("attempted deletion of system category",
			"category_id", categoryID,
			"name", category.Name,
			"user_id", userID)
		return ErrSystemCategory
	}

	if !category.OwnedBy(userID) {
		slog.Warn("unauthorized access attempt to category",
			"category_id", categoryID,
			"owner_id", category.UserID,
			"requestor_id", userID)
		return ErrUnauthorized
	}

	if err := s.categoryRepo.Delete(categoryID); err != nil {
		slog.Error("failed to delete category",
			"category_id", categoryID,
			"user_id", userID,
			"error", err)
		return err
	}

	slog.Info("category deleted",
		"category_id", categoryID,
		"user_id", userID,
		"name", category.Name)

	return nil
}
