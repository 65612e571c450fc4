package services

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CategoryServiceTestSuite is the test suite for the category service
type CategoryServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service CategoryServiceInterface
	userID  uuid.UUID
}

// SetupTest runs before each test
func (s *CategoryServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	database.SeedTestCategories(s.T(), s.db)

	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	s.service = NewCategoryService(categoryRepo, nil)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *CategoryServiceTestSuite) TearDownTest() {
	_ = s.db.Close()
}

// TestCategoryServiceTestSuite runs the test suite
func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

// TestCreateCategory_Valid tests creating a user category
func (s *CategoryServiceTestSuite) TestCreateCategory_Valid() {
	category, err := s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Subscriptions", category.Name)
	assert.False(s.T(), category.IsSystem())
	assert.True(s.T(), category.OwnedBy(s.userID))
}

// TestCreateCategory_NormalizesInput tests trimming and lowercasing
func (s *CategoryServiceTestSuite) TestCreateCategory_NormalizesInput() {
	category, err := s.service.CreateCategory(s.userID, "  Subscriptions  ", " EXPENSE ")
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "Subscriptions", category.Name)
	assert.Equal(s.T(), models.TransactionTypeExpense, category.Type)
}

// TestCreateCategory_DuplicateName tests name collision handling
func (s *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	_, err := s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.NoError(s.T(), err)

	_, err = s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrCategoryNameTaken, err)
}

// TestCreateCategory_InvalidType tests rejection of unknown types
func (s *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	_, err := s.service.CreateCategory(s.userID, "Mystery", "transfer")
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrInvalidCategoryKind, err)
}

// TestCreateCategory_EmptyName tests rejection of blank names
func (s *CategoryServiceTestSuite) TestCreateCategory_EmptyName() {
	_, err := s.service.CreateCategory(s.userID, "   ", "expense")
	require.Error(s.T(), err)
	assert.Equal(s.T(), models.ErrMissingCategoryName, err)
}

// TestListCategories_IncludesSystemAndOwn tests the merged listing
func (s *CategoryServiceTestSuite) TestListCategories_IncludesSystemAndOwn() {
	_, err := s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.NoError(s.T(), err)

	categories, err := s.service.ListCategories(s.userID)
	require.NoError(s.T(), err)

	// Seeded system categories plus the new one
	defaults := models.DefaultCategories()
	assert.Len(s.T(), categories, len(defaults)+1)
}

// TestDeleteCategory_Owned tests deleting an owned category
func (s *CategoryServiceTestSuite) TestDeleteCategory_Owned() {
	category, err := s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.NoError(s.T(), err)

	err = s.service.DeleteCategory(s.userID, category.ID)
	require.NoError(s.T(), err)
}

// TestDeleteCategory_System tests that shared categories are protected
func (s *CategoryServiceTestSuite) TestDeleteCategory_System() {
	categories, err := s.service.ListCategories(s.userID)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), categories)

	var system *models.Category
	for i := range categories {
		if categories[i].IsSystem() {
			system = &categories[i]
			break
		}
	}
	require.NotNil(s.T(), system)

	err = s.service.DeleteCategory(s.userID, system.ID)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrSystemCategory, err)
}

// TestDeleteCategory_WrongUser tests the ownership check
func (s *CategoryServiceTestSuite) TestDeleteCategory_WrongUser() {
	category, err := s.service.CreateCategory(s.userID, "Subscriptions", "expense")
	require.NoError(s.T(), err)

	err = s.service.DeleteCategory(uuid.New(), category.ID)
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrUnauthorized, err)
}

// TestDeleteCategory_NotFound tests deleting a nonexistent category
func (s *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	err := s.service.DeleteCategory(s.userID, uuid.New())
	require.Error(s.T(), err)
	assert.Equal(s.T(), ErrNotFound, err)
}
