package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
}

func (s *HealthHandlerTestSuite) TearDownTest() {
	_ = s.db.Close()
}

func (s *HealthHandlerTestSuite) TestHealthCheck_Healthy() {
	handler := NewHealthCheckHandler(s.db.DB)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body["status"])
	s.NotEmpty(body["time"])
}
