//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dealstack/internal/handler/api"
	"dealstack/internal/usecase/commands"
	"dealstack/tests/common/httptest"
	commandsmock "dealstack/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubscribeHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockSubscribeCommands
	handler  *api.SubscribeHandler
}

func (s *SubscribeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockSubscribeCommands(s.mockCtrl)
	s.handler = api.NewSubscribeHandler(s.mockCmds)

	s.router.POST("/api/subscribe", s.handler.Subscribe)
}

func (s *SubscribeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubscribeHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscribeHandlerTestSuite))
}

func (s *SubscribeHandlerTestSuite) TestSubscribe() {
	url := "/api/subscribe"

	s.Run("success returns 202", func() {
		s.mockCmds.EXPECT().Subscribe(gomock.Any(), "user@example.com", gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "user@example.com"})
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("missing email returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("invalid email returns 400", func() {
		s.mockCmds.EXPECT().Subscribe(gomock.Any(), "not-an-email", gomock.Any()).Return(commands.ErrInvalidEmail)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "not-an-email"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid email address")
	})

	s.Run("store failure returns 500", func() {
		s.mockCmds.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Return(errDBConnectionLost)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "user@example.com"})
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
