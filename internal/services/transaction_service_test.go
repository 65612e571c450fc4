package services

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TransactionServiceTestSuite is the test suite for the transaction service
type TransactionServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service TransactionServiceInterface
	userID  uuid.UUID
}

// SetupTest runs before each test
func (s *TransactionServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	database.SeedTestCategories(s.T(), s.db)

	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)

	s.service = NewTransactionService(transactionRepo, categoryRepo, nil)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *TransactionServiceTestSuite) TearDownTest() {
	_ = s.db.Close()
}

// TestTransactionServiceTestSuite runs the test suite
func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) createTransaction() *models.Transaction {
	txn, err := s.service.CreateTransaction(
		s.userID,
		decimal.NewFromFloat(42.50),
		"Food",
		models.TransactionTypeExpense,
		"groceries",
		time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local),
	)
	require.NoError(s.T(), err)
	return txn
}

// TestCreateTransaction_Valid tests recording a transaction
func (s *TransactionServiceTestSuite) TestCreateTransaction_Valid() {
	txn := s.createTransaction()

	assert.NotEqual(s.T(), uuid.Nil, txn.ID)
	assert.Equal(s.T(), "Food", txn.Category)
	assert.Equal(s.T(), models.TransactionTypeExpense, txn.Type)
}

// TestCreateTransaction_NormalizesType tests case-insensitive type handling
func (s *TransactionServiceTestSuite) TestCreateTransaction_NormalizesType() {
	txn, err := s.service.CreateTransaction(
		s.userID,
		decimal.NewFromInt(3000),
		"Salary",
		"  Income ",
		"",
		time.Date(2025, 6, 25, 9, 0, 0, 0, time.Local),
	)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.TransactionTypeIncome, txn.Type)
}

// TestCreateTransaction_UnknownCategory tests rejection of invisible categories
func (s *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	_, err := s.service.CreateTransaction(
		s.userID,
		decimal.NewFromInt(10),
		"No Such Category",
		models.TransactionTypeExpense,
		"",
		time.Now(),
	)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrNotFound, err)
}

// TestCreateTransaction_OtherUsersCategory tests that private categories stay private
func (s *TransactionServiceTestSuite) TestCreateTransaction_OtherUsersCategory() {
	otherID := uuid.New()
	database.CreateTestCategory(s.T(), s.db, "Gifts", models.TransactionTypeExpense, &otherID)

	_, err := s.service.CreateTransaction(
		s.userID,
		decimal.NewFromInt(10),
		"Gifts",
		models.TransactionTypeExpense,
		"",
		time.Now(),
	)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrNotFound, err)
}

// TestGetTransaction_Owned tests fetching an owned transaction
func (s *TransactionServiceTestSuite) TestGetTransaction_Owned() {
	txn := s.createTransaction()

	retrieved, err := s.service.GetTransaction(s.userID, txn.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), txn.ID, retrieved.ID)
}

// TestGetTransaction_WrongUser tests the ownership check
func (s *TransactionServiceTestSuite) TestGetTransaction_WrongUser() {
	txn := s.createTransaction()

	_, err := s.service.GetTransaction(uuid.New(), txn.ID)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrUnauthorized, err)
}

// TestGetTransaction_NotFound tests the missing row path
func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	_, err := s.service.GetTransaction(s.userID, uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrNotFound, err)
}

// TestUpdateTransaction_Valid tests editing a transaction
func (s *TransactionServiceTestSuite) TestUpdateTransaction_Valid() {
	txn := s.createTransaction()

	updated, err := s.service.UpdateTransaction(
		s.userID,
		txn.ID,
		decimal.NewFromInt(75),
		"Transport",
		models.TransactionTypeExpense,
		"taxi",
		txn.Date,
	)
	require.NoError(s.T(), err)
	assert.True(s.T(), updated.Amount.Equal(decimal.NewFromInt(75)))
	assert.Equal(s.T(), "Transport", updated.Category)
	assert.Equal(s.T(), "taxi", updated.Description)
}

// TestUpdateTransaction_WrongUser tests the ownership check on update
func (s *TransactionServiceTestSuite) TestUpdateTransaction_WrongUser() {
	txn := s.createTransaction()

	_, err := s.service.UpdateTransaction(
		uuid.New(),
		txn.ID,
		decimal.NewFromInt(75),
		"Transport",
		models.TransactionTypeExpense,
		"",
		txn.Date,
	)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrUnauthorized, err)
}

// TestDeleteTransaction_Owned tests deleting an owned transaction
func (s *TransactionServiceTestSuite) TestDeleteTransaction_Owned() {
	txn := s.createTransaction()

	err := s.service.DeleteTransaction(s.userID, txn.ID)
	require.NoError(s.T(), err)

	_, err = s.service.GetTransaction(s.userID, txn.ID)
	assert.Equal(s.T(), ErrNotFound, err)
}

// TestListTransactions_Filtered tests list with filters through the service
func (s *TransactionServiceTestSuite) TestListTransactions_Filtered() {
	s.createTransaction()
	_, err := s.service.CreateTransaction(
		s.userID,
		decimal.NewFromInt(3000),
		"Salary",
		models.TransactionTypeIncome,
		"",
		time.Date(2025, 6, 25, 9, 0, 0, 0, time.Local),
	)
	require.NoError(s.T(), err)

	transactions, total, err := s.service.ListTransactions(models.TransactionFilters{
		UserID: s.userID,
		Type:   models.TransactionTypeIncome,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), "Salary", transactions[0].Category)
}
