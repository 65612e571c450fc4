package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *BudgetHandler
	userID  uuid.UUID
	month   string
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	database.SeedTestCategories(s.T(), s.db)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
	s.month = "2025-06"

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	budgetRepo := repositories.NewBudgetRepository(s.db.DB)
	goalRepo := repositories.NewSavingsGoalRepository(s.db.DB)

	budgetService := services.NewBudgetService(budgetRepo, categoryRepo, nil)
	reportService := services.NewReportService(transactionRepo, categoryRepo, budgetRepo, goalRepo, nil)
	s.handler = NewBudgetHandler(budgetService, reportService)
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *BudgetHandlerTestSuite) newJSONContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *BudgetHandlerTestSuite) setBudget(category, amount string) *models.Budget {
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/budgets", dto.SetBudgetRequest{
		Category: category,
		Month:    s.month,
		Amount:   amount,
	})

	s.Require().NoError(s.handler.SetBudget(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Budget
}

func (s *BudgetHandlerTestSuite) TestSetBudget_CategoryLimit() {
	budget := s.setBudget("Food", "500.00")

	s.Equal("Food", budget.Category)
	s.False(budget.IsGlobal())
	s.True(budget.Amount.Equal(decimal.NewFromInt(500)))
}

func (s *BudgetHandlerTestSuite) TestSetBudget_GlobalLimit() {
	budget := s.setBudget("", "2000.00")
	s.True(budget.IsGlobal())
}

func (s *BudgetHandlerTestSuite) TestSetBudget_Overwrite() {
	first := s.setBudget("Food", "500.00")
	second := s.setBudget("Food", "300.00")

	s.Equal(first.ID, second.ID)
	s.True(second.Amount.Equal(decimal.NewFromInt(300)))
}

func (s *BudgetHandlerTestSuite) TestSetBudget_UnknownCategory() {
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/budgets", dto.SetBudgetRequest{
		Category: "No Such Category",
		Month:    s.month,
		Amount:   "100.00",
	})

	s.Require().NoError(s.handler.SetBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CategoryNotFound), resp.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestSetBudget_InvalidMonth() {
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/budgets", dto.SetBudgetRequest{
		Category: "Food",
		Month:    "06-2025",
		Amount:   "100.00",
	})

	s.Require().NoError(s.handler.SetBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestSetBudget_NonPositiveAmount() {
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/budgets", dto.SetBudgetRequest{
		Category: "Food",
		Month:    s.month,
		Amount:   "0",
	})

	s.Require().NoError(s.handler.SetBudget(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.BudgetInvalidAmount), resp.Error.Code)
}

func (s *BudgetHandlerTestSuite) TestGetBudgetOverview_EvaluatesSpend() {
	s.setBudget("Food", "300.00")
	s.setBudget("", "1000.00")

	spendDate := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	database.CreateTestTransaction(s.T(), s.db, s.userID, "Food", models.TransactionTypeExpense, decimal.NewFromInt(420), spendDate)

	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/budgets?month="+s.month, nil)
	s.Require().NoError(s.handler.GetBudgetOverview(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BudgetOverviewResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.month, resp.Month)
	s.Require().Len(resp.Budgets, 2)

	// The whole-ledger line sorts first
	global := resp.Budgets[0]
	s.Equal(models.GlobalBudgetCategory, global.Category)
	s.True(global.Spent.Equal(decimal.NewFromInt(420)))
	s.False(global.OverLimit)

	food := resp.Budgets[1]
	s.Equal("Food", food.Category)
	s.True(food.OverLimit)
}

func (s *BudgetHandlerTestSuite) TestGetBudgetOverview_InvalidMonth() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/budgets?month=garbage", nil)
	s.Require().NoError(s.handler.GetBudgetOverview(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_Success() {
	s.setBudget("Food", "500.00")

	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/budgets?category=Food&month="+s.month, nil)
	s.Require().NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/budgets?category=Food&month="+s.month, nil)
	s.Require().NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.BudgetNotFound), resp.Error.Code)
}
