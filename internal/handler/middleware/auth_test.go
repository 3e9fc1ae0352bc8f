//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/handler/middleware"
	"event-reservation/internal/pkg/cookie"
	"event-reservation/internal/pkg/jwt"
	"event-reservation/internal/usecase"
	"event-reservation/internal/usecase/queries"
	"event-reservation/internal/usecase/shared"
	"event-reservation/tests/common/builder"
	"event-reservation/tests/common/httptest"
	queriesmock "event-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockUsers *queriesmock.MockUserQueries
	jwt       *jwt.Service
	seen      *shared.Actor
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.jwt = jwt.NewService("test-secret", time.Hour)
	s.seen = nil

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt), s.mockUsers)
	s.router.Use(auth.Authenticate())
	s.router.GET("/whoami", func(c *gin.Context) {
		s.seen = middleware.GetCurrentUser(c)
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate() {
	stored := builder.NewUserBuilder().AsAdmin().BuildReadModel()

	s.Run("bearer token resolves the stored user and role", func() {
		s.seen = nil
		// token still says user; the stored role wins
		token, err := s.jwt.GenerateToken(stored.ID, user.RoleUser)
		s.Require().NoError(err)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), stored.ID).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, token)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Require().NotNil(s.seen)
		s.Equal(stored.ID, s.seen.ID)
		s.Equal(stored.Email, s.seen.Email)
		s.True(s.seen.IsAdmin())
	})

	s.Run("session cookie is accepted", func() {
		s.seen = nil
		token, err := s.jwt.GenerateToken(stored.ID, user.RoleAdmin)
		s.Require().NoError(err)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), stored.ID).Return(stored, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil, cookies, "")

		s.Require().NotNil(s.seen)
		s.Equal(stored.ID, s.seen.ID)
	})

	s.Run("anonymous without token", func() {
		s.seen = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Nil(s.seen)
	})

	s.Run("anonymous with an invalid token", func() {
		s.seen = nil
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "garbage")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Nil(s.seen)
	})

	s.Run("anonymous when the user no longer exists", func() {
		s.seen = nil
		token, err := s.jwt.GenerateToken(stored.ID, user.RoleAdmin)
		s.Require().NoError(err)
		s.mockUsers.EXPECT().GetCurrentUser(gomock.Any(), stored.ID).Return(nil, queries.ErrUserNotFound).Times(1)

		httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, token)

		s.Nil(s.seen)
	})
}
