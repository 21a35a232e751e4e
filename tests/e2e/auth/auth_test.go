//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"cozycup/internal/domain/user"
	"cozycup/internal/handler/dto/request"
	resdto "cozycup/internal/handler/dto/response"
	"cozycup/internal/pkg/cookie"
	"cozycup/tests/common/authtest"
	"cozycup/tests/common/dbtest"
	"cozycup/tests/common/httptest"
	"cozycup/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "barista@example.com", string(user.RoleHost))
	dbtest.CreateTestUser(s.T(), s.DB, "gone@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'gone@example.com'")
	s.Require().NoError(err)
}

func (s *authSuite) TestRegister() {
	s.Run("OK: new accounts are customers", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Email: "New@Example.com", Password: "password123", Name: "New"}, "")

		var res resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("new@example.com", res.User.Email)
		s.Equal(string(user.RoleCustomer), res.User.Role)
		s.NotEmpty(res.AccessToken)
	})

	s.Run("NG: duplicate email", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Email: "guest@example.com", Password: "password123"}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "OK: valid credentials", email: "guest@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "NG: unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "NG: wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "NG: inactive user", email: "gone@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "NG: empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "NG: empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res resdto.AuthResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.NotEmpty(t, res.RefreshToken)

			var lastLogin *time.Time
			require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin))
			require.NotNil(t, lastLogin, "last_login not recorded")
		})
	}
}

func (s *authSuite) TestRefresh() {
	login := func() resdto.AuthResponse {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.DefaultPassword}, "")
		var res resdto.AuthResponse
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
		return res
	}

	s.Run("OK: rotates the pair and retires the old refresh token", func() {
		first := login()
		// iat has second resolution; make sure the rotated token differs
		time.Sleep(1100 * time.Millisecond)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: first.RefreshToken}, "")
		var rotated resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rotated)
		s.NotEqual(first.RefreshToken, rotated.RefreshToken)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: first.RefreshToken}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("NG: garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("NG: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("OK: me then logout", func() {
		token := authtest.LoginUser(s.T(), s.Router, "barista@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(string(user.RoleHost), me.Role)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		authtest.LogoutUser(s.T(), s.Router, cookies)
	})

	s.Run("NG: expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("NG: token for a user that no longer exists", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
