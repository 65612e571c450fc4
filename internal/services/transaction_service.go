package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

func (s *transactionService) CreateTransaction(userID uuid.UUID, amount decimal.Decimal, category, txnType, description string, date time.Time) (*models.Transaction, error) {
	txnType = strings.ToLower(strings.TrimSpace(txnType))
	if err := s.validateCategoryVisible(userID, category); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Type:        txnType,
		Description: description,
		Date:        date,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementCounter("transaction.recorded", map[string]string{"type": transaction.Type})
	}

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"category", category,
		"type", transaction.Type)

	return transaction, nil
}

func (s *transactionService) GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *transactionService) UpdateTransaction(userID, transactionID uuid.UUID, amount decimal.Decimal, category, txnType, description string, date time.Time) (*models.Transaction, error) {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	txnType = strings.ToLower(strings.TrimSpace(txnType))
	if err := s.validateCategoryVisible(userID, category); err != nil {
		return nil, err
	}

	transaction.Amount = amount
	transaction.Category = category
	transaction.Type = txnType
	transaction.Description = description
	transaction.Date = date

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		slog.Error("failed to update transaction",
			"transaction_id", transactionID,
			"user_id", userID,
			"error", err)
		return nil, err
	}

	slog.Info("transaction updated",
		"transaction_id", transactionID,
		"user_id", userID)

	return s.transactionRepo.GetByID(transactionID)
}

func (s *transactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	if _, err := s.getOwnedTransaction(userID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transactionID); err != nil {
		slog.Error("failed to delete transaction",
			"transaction_id", transactionID,
			"user_id", userID,
			"error", err)
		return err
	}

	slog.Info("transaction deleted",
		"transaction_id", transactionID,
		"user_id", userID)

	return nil
}

func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	transactions, total, err := s.transactionRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("failed to list transactions",
			"user_id", filters.UserID,
			"error", err)
		return nil, 0, err
	}
	return transactions, total, nil
}

func (s *transactionService) getOwnedTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.UserID != userID {
		slog.Warn("unauthorized access attempt to transaction",
			"transaction_id", transactionID,
			"owner_id", transaction.UserID,
			"requestor_id", userID)
		return nil, ErrUnauthorized
	}

	return transaction, nil
}

// validateCategoryVisible checks that the category exists either as a system
// category or as one owned by the user. Rows that predate category cleanup
// may carry names no longer present; only new writes are held to this.
func (s *transactionService) validateCategoryVisible(userID uuid.UUID, category string) error {
	if category == "" {
		return models.ErrMissingCategory
	}

	_, err := s.categoryRepo.GetByName(userID, category)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to verify category: %w", err)
	}
	return nil
}
