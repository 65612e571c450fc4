package handlers

import (
	"net/http"
	"strconv"

	apierrors "fintrack/internal/errors"

	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewSampleDataGenerator(),
	}
}

// GenerateSampleData fills the authenticated user's ledger with realistic
// demo transactions covering the trailing months
//
// Method: POST /api/v1/dev/generate-sample-data
// Query parameters:
//   - months: Number of trailing months to cover (default: 3, max: 24)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	months := getIntQueryParam(c, "months", 3)
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	transactions := h.generator.GenerateTransactions(userID, months)

	created := 0
	for _, txn := range transactions {
		if err := h.transactionRepo.Create(txn); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample data generated successfully",
		"transactions_created": created,
	})
}

func getIntQueryParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}
