//go:build api

package testserver

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"ecobin-portal/internal/handler"
	"ecobin-portal/internal/models"
	"ecobin-portal/test/testutil"

	"github.com/stretchr/testify/require"
)

// Default accounts created by the auth helpers.
const (
	MemberEmail    = "thandi@example.com"
	MemberPassword = "secret123"
	AdminEmail     = "admin@example.com"
	AdminPassword  = "admin-secret"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// Login logs in through the portal and returns the login response.
func (ah *AuthHelper) Login(t *testing.T, email, password string) models.LoginResponse {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: password}
	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var login models.LoginResponse
	resp := testutil.ParseAPIResponse(t, w, &login)
	require.True(t, resp.Success, "login response should be successful")
	return login
}

// CreateMember registers the default member on the backend and returns a
// portal session token.
func (ah *AuthHelper) CreateMember(t *testing.T) string {
	t.Helper()
	ah.server.Backend.AddUser("Thandi Mokoena", MemberEmail, MemberPassword, "disposalMember")
	return ah.Login(t, MemberEmail, MemberPassword).Token
}

// CreateAdmin registers the default admin on the backend and returns a
// portal session token.
func (ah *AuthHelper) CreateAdmin(t *testing.T) string {
	t.Helper()
	ah.server.Backend.AddUser("Site Admin", AdminEmail, AdminPassword, "admin")
	return ah.Login(t, AdminEmail, AdminPassword).Token
}

// DisposalHelper drives the disposal workflow for API tests.
type DisposalHelper struct {
	server *TestServer
}

// NewDisposalHelper creates a new disposal helper.
func NewDisposalHelper(server *TestServer) *DisposalHelper {
	return &DisposalHelper{server: server}
}

// Start uploads a PNG and returns the new disposal.
func (dh *DisposalHelper) Start(t *testing.T, token string) models.DisposalView {
	t.Helper()

	w := testutil.MakeUploadRequest(t, dh.server.Router, http.MethodPost, "/api/v1/disposals", token, handler.ImageField, "bottle.png", PNG(t))
	require.Equal(t, http.StatusCreated, w.Code, "create disposal should return 201, got: %s", w.Body.String())

	var view models.DisposalView
	testutil.ParseAPIResponse(t, w, &view)
	return view
}

// OpenBins opens the bin selection of disposal id.
func (dh *DisposalHelper) OpenBins(t *testing.T, token, id string) models.BinSelectionView {
	t.Helper()

	w := testutil.MakeAuthRequest(t, dh.server.Router, http.MethodPost, "/api/v1/disposals/"+id+"/bins", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "open bins should return 200, got: %s", w.Body.String())

	var selection models.BinSelectionView
	testutil.ParseAPIResponse(t, w, &selection)
	return selection
}

// Select posts the bin choice and returns the status and, when present,
// the disposal.
func (dh *DisposalHelper) Select(t *testing.T, token, id string, binID int) (int, models.DisposalView) {
	t.Helper()

	w := testutil.MakeAuthRequest(t, dh.server.Router, http.MethodPost, "/api/v1/disposals/"+id+"/select", token, models.SelectBinRequest{BinID: binID})

	var view models.DisposalView
	resp := testutil.ParseAPIResponse(t, w, nil)
	if len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, &view))
	}
	return w.Code, view
}

// PNG returns a small valid PNG image.
func PNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 30, G: 160, B: 60, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
