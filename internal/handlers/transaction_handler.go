package handlers

import (
	"errors"
	"net/http"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/dto"
	"fintrack/internal/ledger"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new income or expense entry
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	transaction, err := h.transactionService.CreateTransaction(userID, amount, req.Category, req.Type, req.Description, date)
	if err != nil {
		// The only lookup performed during create is the category check
		if errors.Is(err, services.ErrNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{
		Transaction: transaction,
		Message:     "Transaction recorded successfully",
	})
}

// GetTransaction retrieves a single transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// UpdateTransaction edits the mutable fields of an existing transaction
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate)
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, amount, req.Category, req.Type, req.Description, date)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: transaction,
		Message:     "Transaction updated successfully",
	})
}

// DeleteTransaction removes a transaction from the ledger
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListTransactions retrieves filtered and paginated transaction history
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var params dto.TransactionQueryParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	filters, err := h.buildFilters(userID, params)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// buildFilters converts validated query params into repository filters. A
// month token expands to the month's date bounds; explicit start and end
// dates override the token.
func (h *TransactionHandler) buildFilters(userID uuid.UUID, params dto.TransactionQueryParams) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		UserID:   userID,
		Category: params.Category,
		Type:     params.Type,
		Offset:   params.Offset,
		Limit:    params.Limit,
	}

	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if params.Month != "" {
		period, err := ledger.MonthPeriod(params.Month)
		if err != nil {
			return models.TransactionFilters{}, err
		}
		start := period.Start
		end := period.End
		filters.StartDate = &start
		filters.EndDate = &end
	}

	if params.StartDate != "" {
		start, err := parseDate(params.StartDate)
		if err != nil {
			return models.TransactionFilters{}, err
		}
		filters.StartDate = &start
	}

	if params.EndDate != "" {
		end, err := parseDate(params.EndDate)
		if err != nil {
			return models.TransactionFilters{}, err
		}
		filters.EndDate = &end
	}

	return filters, nil
}

func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, services.ErrUnauthorized):
		return SendError(c, apierrors.AuthAccessDenied)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrMissingCategory):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("Category is required"))
	default:
		return SendSystemError(c, err)
	}
}
