package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibook/models"
	"medibook/services/user"
)

type stubUserService struct {
	registerErr error
	authResp    *user.AuthResponse
	authErr     error
	logoutErr   error
	profile     *models.User
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string) error {
	return s.registerErr
}

func (s *stubUserService) Authenticate(ctx context.Context, email, password string) (*user.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubUserService) Logout(ctx context.Context, token string) error {
	return s.logoutErr
}

func (s *stubUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.profile, nil
}

func newUserRouter(stub *stubUserService) *gin.Engine {
	r := gin.New()
	uh := NewUserHandler(stub)
	api := r.Group("/api/users")
	api.POST("/register", uh.RegisterUserHandler)
	api.POST("/login", uh.AuthenticateUserHandler)
	api.POST("/logout", uh.LogoutUserHandler)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterUserHandler(t *testing.T) {
	r := newUserRouter(&stubUserService{})

	w := postJSON(r, "/api/users/register", `{"name":"Alice","email":"alice@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"msg":"User registered successfully"}`, w.Body.String())
}

func TestRegisterUserHandlerDuplicate(t *testing.T) {
	r := newUserRouter(&stubUserService{registerErr: user.ErrUserExists})

	w := postJSON(r, "/api/users/register", `{"name":"Alice","email":"alice@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"User already exists"}`, w.Body.String())
}

func TestRegisterUserHandlerRejectsMissingFields(t *testing.T) {
	r := newUserRouter(&stubUserService{})

	w := postJSON(r, "/api/users/register", `{"email":"alice@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthenticateUserHandlerSetsCookie(t *testing.T) {
	r := newUserRouter(&stubUserService{authResp: &user.AuthResponse{
		Token: "signed-token",
		User:  user.SessionUser{ID: "user-1", IsAdmin: true},
	}})

	w := postJSON(r, "/api/users/login", `{"email":"alice@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Login successful","token":"signed-token","user":{"id":"user-1","isAdmin":true}}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthenticateUserHandlerInvalidCredentials(t *testing.T) {
	r := newUserRouter(&stubUserService{authErr: user.ErrInvalidCredentials})

	w := postJSON(r, "/api/users/login", `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"msg":"Invalid credentials"}`, w.Body.String())
}

func TestLogoutUserHandlerWithoutToken(t *testing.T) {
	r := newUserRouter(&stubUserService{})

	w := postJSON(r, "/api/users/logout", ``)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutUserHandlerClearsCookie(t *testing.T) {
	r := newUserRouter(&stubUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "signed-token"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
