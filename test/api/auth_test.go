//go:build api

package api

import (
	"net/http"
	"testing"

	"ecobin-portal/internal/models"
	"ecobin-portal/test/api/testserver"
	"ecobin-portal/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	register := func(req interface{}) (int, testutil.APIResponse) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/register", req)
		return w.Code, testutil.ParseAPIResponse(t, w, nil)
	}
	valid := models.RegisterRequest{
		Name:        "Thandi Mokoena",
		Email:       testserver.MemberEmail,
		Password:    testserver.MemberPassword,
		PhoneNumber: "0821234567",
	}

	t.Run("success - account can log in", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		code, resp := register(valid)

		require.Equal(t, http.StatusCreated, code)
		assert.True(t, resp.Success)
		assert.Contains(t, string(resp.Data), "Registration successful! You can now log in.")

		login := testserver.NewAuthHelper(testServer).Login(t, valid.Email, valid.Password)
		assert.Equal(t, "disposalMember", login.Role)
		assert.Equal(t, "/profile", login.Redirect)
		assert.False(t, login.IsAdmin)
	})

	t.Run("error - duplicate email forwards backend message", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		testServer.Backend.AddUser("Existing", valid.Email, "pw", "disposalMember")

		code, resp := register(valid)

		assert.Equal(t, http.StatusBadGateway, code)
		assert.Equal(t, "Registration failed. Email already exists.", resp.Error)
	})

	t.Run("error - missing fields", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		code, resp := register(map[string]string{"email": valid.Email})

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "All fields are required.", resp.Error)
	})
}

func TestLogin(t *testing.T) {
	t.Run("admin lands on the admin console", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		testServer.Backend.AddUser("Site Admin", testserver.AdminEmail, testserver.AdminPassword, "admin")

		login := testserver.NewAuthHelper(testServer).Login(t, testserver.AdminEmail, testserver.AdminPassword)

		assert.True(t, login.IsAdmin)
		assert.Equal(t, "/admin", login.Redirect)
		assert.NotEmpty(t, login.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)
		testServer.Backend.AddUser("Thandi", testserver.MemberEmail, testserver.MemberPassword, "disposalMember")

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/login",
			models.LoginRequest{Email: testserver.MemberEmail, Password: "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := testutil.ParseAPIResponse(t, w, nil)
		assert.Equal(t, "Login failed. Please check your credentials.", resp.Error)
	})
}

func TestLogout(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testserver.NewAuthHelper(testServer).CreateMember(t)

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "token must stop working once the session is gone")
}

func TestProfileAndHome(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testserver.NewAuthHelper(testServer).CreateMember(t)

	t.Run("member profile shows points", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var profile models.ProfileView
		testutil.ParseAPIResponse(t, w, &profile)
		assert.Equal(t, "Hi, Thandi Mokoena!", profile.Title)
		require.NotNil(t, profile.Points)
		assert.Equal(t, 0, *profile.Points)
	})

	t.Run("home is session aware", func(t *testing.T) {
		var anonymous, member models.HomeView
		testutil.ParseAPIResponse(t, testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/home", nil), &anonymous)
		testutil.ParseAPIResponse(t, testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/home", token, nil), &member)

		assert.False(t, anonymous.LoggedIn)
		assert.True(t, member.LoggedIn)
	})

	t.Run("member cannot open admin routes", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
