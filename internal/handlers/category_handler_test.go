package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *CategoryHandler
	userID  uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	database.SeedTestCategories(s.T(), s.db)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()

	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	s.handler = NewCategoryHandler(services.NewCategoryService(categoryRepo, nil))
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *CategoryHandlerTestSuite) newJSONContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *CategoryHandlerTestSuite) createCategory(name, categoryType string) (*httptest.ResponseRecorder, *dto.CategoryResponse) {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{
		Name: name,
		Type: categoryType,
	})

	s.Require().NoError(s.handler.CreateCategory(c))
	if rec.Code != http.StatusCreated {
		return rec, nil
	}

	var resp dto.CategoryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, &resp
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	rec, resp := s.createCategory("Pet Care", "expense")

	s.Equal(http.StatusCreated, rec.Code)
	s.Require().NotNil(resp)
	s.Equal("Pet Care", resp.Category.Name)
	s.Equal(models.TransactionTypeExpense, resp.Category.Type)
	s.Require().NotNil(resp.Category.UserID)
	s.Equal(s.userID, *resp.Category.UserID)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_DuplicateName() {
	rec, _ := s.createCategory("Pet Care", "expense")
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec, _ = s.createCategory("Pet Care", "expense")
	s.Equal(http.StatusConflict, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CategoryAlreadyExists), resp.Error.Code)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_InvalidType() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{
		Name: "Pet Care",
		Type: "transfer",
	})

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_MissingName() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/categories", dto.CreateCategoryRequest{
		Type: "expense",
	})

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestListCategories_SystemPlusOwn() {
	rec, _ := s.createCategory("Pet Care", "expense")
	s.Require().Equal(http.StatusCreated, rec.Code)

	c, listRec := s.newJSONContext(http.MethodGet, "/api/v1/categories", nil)
	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, listRec.Code)

	var resp dto.CategoryListResponse
	s.Require().NoError(json.Unmarshal(listRec.Body.Bytes(), &resp))
	s.Len(resp.Categories, len(models.DefaultCategories())+1)
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory_OwnCategory() {
	rec, resp := s.createCategory("Pet Care", "expense")
	s.Require().Equal(http.StatusCreated, rec.Code)

	c, delRec := s.newJSONContext(http.MethodDelete, "/api/v1/categories/"+resp.Category.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(resp.Category.ID.String())

	s.Require().NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusNoContent, delRec.Code)
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory_SystemCategory() {
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	system, err := categoryRepo.GetByName(s.userID, "Food")
	s.Require().NoError(err)

	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/categories/"+system.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(system.ID.String())

	s.Require().NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusForbidden, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CategorySystemOwned), resp.Error.Code)
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	missingID := uuid.New()
	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/categories/"+missingID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(missingID.String())

	s.Require().NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
