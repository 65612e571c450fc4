package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains the query options for transaction listings.
// Nil/zero fields are ignored.
type TransactionFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      string
	Offset    int
	Limit     int
}
