package ledger

import "fintrack/internal/models"

// Classifier resolves a transaction to exactly one of income/expense. The
// ledger schema grew its own type column after initially deriving the type
// from the category, so both paths stay supported: an explicit type wins,
// then the category mapping, then the expense fallback for transactions
// whose category has no mapping entry (deleted or renamed categories).
type Classifier struct {
	typeByCategory map[string]string
}

// NewClassifier builds a classifier from the available category set.
func NewClassifier(categories []models.Category) *Classifier {
	typeByCategory := make(map[string]string, len(categories))
	for i := range categories {
		typeByCategory[categories[i].Name] = categories[i].Type
	}
	return &Classifier{typeByCategory: typeByCategory}
}

// Classify returns models.TransactionTypeIncome or
// models.TransactionTypeExpense for any transaction; it never fails.
func (c *Classifier) Classify(t *models.Transaction) string {
	if t.HasExplicitType() {
		return t.Type
	}

	if categoryType, ok := c.typeByCategory[t.Category]; ok {
		return categoryType
	}

	return models.TransactionTypeExpense
}
