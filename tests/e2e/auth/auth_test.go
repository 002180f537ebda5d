//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/dto/response"
	"storefront-api/tests/common/authtest"
	"storefront-api/tests/common/dbtest"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

// =============================================================================
// TestLogin - Login API tests
// =============================================================================

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Normal case: Valid credentials log in",
			email:          "customer@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Error case: Unknown email is rejected",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Wrong password is rejected",
			email:          "customer@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Error case: Inactive account cannot log in",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Error case: Empty email is rejected",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error case: Empty password is rejected",
			email:          "customer@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotNil(t, loginRes.User)
				require.Equal(t, tt.email, loginRes.User.Email)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "access_token cookie not set")
				require.Equal(t, loginRes.AccessToken, accessCookie.Value)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at was not updated")
			}
		})
	}
}

// =============================================================================
// TestLogout - Logout API tests
// =============================================================================

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears the access token cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "customer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared, "clearing cookie not set")
		require.Empty(t, cleared.Value)
	})

	s.Run("Auth test - No token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Auth test - Invalid token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestMe - Current user API tests
// =============================================================================

func (s *AuthSuite) TestMe() {
	roles := []struct {
		name  string
		email string
		role  user.Role
	}{
		{name: "Normal case: Customer can read their own profile", email: "me-customer@example.com", role: user.RoleCustomer},
		{name: "Normal case: Staff can read their own profile", email: "me-staff@example.com", role: user.RoleStaff},
		{name: "Normal case: Admin can read their own profile", email: "me-admin@example.com", role: user.RoleAdmin},
	}

	for _, tt := range roles {
		s.Run(tt.name, func() {
			t := s.T()

			token := authtest.CreateAndLogin(t, s.DB, s.Router, tt.email, string(tt.role))

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			body := w.Body.String()
			require.Contains(t, body, tt.email)
			require.Contains(t, body, string(tt.role))
			require.NotContains(t, body, "password")
		})
	}

	s.Run("Auth test - Invalid token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Auth test - No token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestTokenExpiry - Expired token handling
// =============================================================================

func (s *AuthSuite) TestTokenExpiry() {
	s.Run("Error case: Expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expired := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Normal case: Freshly issued token is accepted", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "fresh@example.com", string(user.RoleCustomer))
		token := s.jwtHelper.GenerateToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
