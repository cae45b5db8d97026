package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/models"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/service"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/storage"
)

// stubAuthService returns canned results per method.
type stubAuthService struct {
	signupResp *models.SignupResponse
	signupErr  error
	loginResp  *models.LoginResponse
	loginErr   error
	forgotErr  error
	exists     bool
	checkErr   error

	lastProfileImage *string
}

func (s *stubAuthService) Signup(req *models.SignupRequest, profileImage *string) (*models.SignupResponse, error) {
	s.lastProfileImage = profileImage
	return s.signupResp, s.signupErr
}

func (s *stubAuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) ForgotPassword(email string) error {
	return s.forgotErr
}

func (s *stubAuthService) CheckEmail(email string) (bool, error) {
	return s.exists, s.checkErr
}

func setupRouter(t *testing.T, svc service.AuthService) *gin.Engine {
	t.Helper()

	fileStore, err := storage.NewFileStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	ac := NewAuthController(svc, fileStore)
	router.POST("/api/signup", ac.Signup)
	router.POST("/api/login", ac.Login)
	router.POST("/api/forgot", ac.ForgotPassword)
	router.POST("/check-email-data", ac.CheckEmail)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupForm(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withFile {
		part, err := writer.CreateFormFile("profileImage", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSignup_Created(t *testing.T) {
	svc := &stubAuthService{signupResp: &models.SignupResponse{Message: "User created", UserID: 1}}
	router := setupRouter(t, svc)

	body, contentType := signupForm(t, map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "User created", resp["message"])
	assert.Equal(t, float64(1), resp["userId"])
	assert.Nil(t, svc.lastProfileImage)
}

func TestSignup_WithProfileImage(t *testing.T) {
	svc := &stubAuthService{signupResp: &models.SignupResponse{Message: "User created", UserID: 2}}
	router := setupRouter(t, svc)

	body, contentType := signupForm(t, map[string]string{
		"username": "bob",
		"email":    "b@x.com",
		"password": "pw123",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastProfileImage)
	assert.True(t, strings.HasPrefix(*svc.lastProfileImage, "/uploads/"))
	assert.True(t, strings.HasSuffix(*svc.lastProfileImage, ".png"))
}

func TestSignup_MissingFields(t *testing.T) {
	router := setupRouter(t, &stubAuthService{})

	body, contentType := signupForm(t, map[string]string{"username": "alice"}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_DuplicateConflict(t *testing.T) {
	svc := &stubAuthService{signupErr: service.ErrEmailTaken}
	router := setupRouter(t, svc)

	body, contentType := signupForm(t, map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email or username already in use", decodeBody(t, w)["error"])
}

func TestSignup_StoreError(t *testing.T) {
	svc := &stubAuthService{signupErr: assert.AnError}
	router := setupRouter(t, svc)

	body, contentType := signupForm(t, map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/signup", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to create user", decodeBody(t, w)["error"])
}

func TestLogin_Success(t *testing.T) {
	svc := &stubAuthService{loginResp: &models.LoginResponse{Message: "Login successful", UserID: 1}}
	router := setupRouter(t, svc)

	w := postJSON(t, router, "/api/login", gin.H{"email": "a@x.com", "password": "pw123"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "Login successful", resp["message"])
	assert.Equal(t, float64(1), resp["userId"])
}

// Wrong password and unknown email must produce byte-identical responses.
func TestLogin_InvalidCredentialBodiesMatch(t *testing.T) {
	svc := &stubAuthService{loginErr: service.ErrInvalidCredentials}
	router := setupRouter(t, svc)

	wrongPassword := postJSON(t, router, "/api/login", gin.H{"email": "a@x.com", "password": "wrong"})
	unknownEmail := postJSON(t, router, "/api/login", gin.H{"email": "nobody@x.com", "password": "pw123"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Equal(t, "Invalid credentials", decodeBody(t, wrongPassword)["error"])
}

func TestLogin_StoreError(t *testing.T) {
	svc := &stubAuthService{loginErr: assert.AnError}
	router := setupRouter(t, svc)

	w := postJSON(t, router, "/api/login", gin.H{"email": "a@x.com", "password": "pw123"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to login", decodeBody(t, w)["error"])
}

func TestForgotPassword_Acknowledges(t *testing.T) {
	router := setupRouter(t, &stubAuthService{})

	w := postJSON(t, router, "/api/forgot", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password reset link sent", decodeBody(t, w)["message"])
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc := &stubAuthService{forgotErr: service.ErrUserNotFound}
	router := setupRouter(t, svc)

	w := postJSON(t, router, "/api/forgot", gin.H{"email": "nobody@x.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestCheckEmail_Exists(t *testing.T) {
	router := setupRouter(t, &stubAuthService{exists: true})

	w := postJSON(t, router, "/check-email-data", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["exists"])
}

func TestCheckEmail_Absent(t *testing.T) {
	router := setupRouter(t, &stubAuthService{exists: false})

	w := postJSON(t, router, "/check-email-data", gin.H{"email": "nobody@x.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["exists"])
}

func TestCheckEmail_MissingField(t *testing.T) {
	router := setupRouter(t, &stubAuthService{})

	w := postJSON(t, router, "/check-email-data", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", decodeBody(t, w)["error"])
}

func TestCheckEmail_StoreError(t *testing.T) {
	svc := &stubAuthService{checkErr: assert.AnError}
	router := setupRouter(t, svc)

	w := postJSON(t, router, "/check-email-data", gin.H{"email": "a@x.com"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
}
