package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrMissingCategoryName = errors.New("category name is required")
)

// Category tags transactions and carries the type used to classify rows that
// predate the transaction type column. A nil UserID marks a system category:
// shared across users and never deletable.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_scope_name_type" json:"name"`
	Type      string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_scope_name_type" json:"type"`
	UserID    *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_categories_scope_name_type" json:"user_id,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrMissingCategoryName
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

// IsSystem returns true for shared categories not owned by any user
func (c *Category) IsSystem() bool {
	return c.UserID == nil
}

// OwnedBy returns true if the category belongs to the given user
func (c *Category) OwnedBy(userID uuid.UUID) bool {
	return c.UserID != nil && *c.UserID == userID
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the system categories seeded at install time.
func DefaultCategories() []Category {
	expense := []string{"Food", "Transport", "Housing", "Utilities", "Entertainment", "Health", "Shopping", "Other"}
	income := []string{"Salary", "Freelance", "Investments"}

	categories := make([]Category, 0, len(expense)+len(income))
	for _, name := range expense {
		categories = append(categories, Category{Name: name, Type: TransactionTypeExpense})
	}
	for _, name := range income {
		categories = append(categories, Category{Name: name, Type: TransactionTypeIncome})
	}
	return categories
}
