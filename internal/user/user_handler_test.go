package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-assetms/internal/shared/apperror"
	"go-assetms/internal/user"
	usererrors "go-assetms/internal/user/errors"
	userMock "go-assetms/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	apperror.Init()
}

// Routes are registered without the per-IP rate limiters so repeated
// requests in one test run do not trip them.
func setupUserRouter(handler *user.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	users := api.Group("/users")
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := userMock.NewMockService(ctrl)
	router := setupUserRouter(user.NewHandler(mockService))

	payload := gin.H{
		"email":           "ada@example.com",
		"employee_number": "EMP-000001",
		"password":        "password123",
	}

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), user.RegisterRequest{
				Email:          "ada@example.com",
				EmployeeNumber: "EMP-000001",
				Password:       "password123",
			}).
			Return(user.RegisterResponse{Message: "User account created successfully"}, nil)

		w := postJSON(t, router, "/api/users/register", payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"message":"User account created successfully"}`, w.Body.String())
	})

	t.Run("employee not found", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(user.RegisterResponse{}, usererrors.ErrEmployeeNotFound)

		w := postJSON(t, router, "/api/users/register", payload)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, apperror.CodeNotFound, res["code"])
		assert.Equal(t, "Employee with this email and number not found", res["message"])
	})

	t.Run("account already exists", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(user.RegisterResponse{}, usererrors.ErrAccountAlreadyExists)

		w := postJSON(t, router, "/api/users/register", payload)

		assert.Equal(t, http.StatusConflict, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, apperror.CodeConflict, res["code"])
	})

	t.Run("password too short", func(t *testing.T) {
		w := postJSON(t, router, "/api/users/register", gin.H{
			"email":           "ada@example.com",
			"employee_number": "EMP-000001",
			"password":        "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, apperror.CodeInvalidInput, res["code"])
	})

	t.Run("missing email", func(t *testing.T) {
		w := postJSON(t, router, "/api/users/register", gin.H{
			"employee_number": "EMP-000001",
			"password":        "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := userMock.NewMockService(ctrl)
	router := setupUserRouter(user.NewHandler(mockService))

	t.Run("ok", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), user.LoginRequest{Email: "ada@example.com", Password: "password123"}).
			Return(user.LoginResponse{AccessToken: "token-abc"}, nil)

		w := postJSON(t, router, "/api/users/login", gin.H{
			"email":    "ada@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accessToken":"token-abc"}`, w.Body.String())
	})

	t.Run("unknown email and wrong password produce identical bodies", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), user.LoginRequest{Email: "nobody@example.com", Password: "password123"}).
			Return(user.LoginResponse{}, usererrors.ErrInvalidCredentials)

		wUnknown := postJSON(t, router, "/api/users/login", gin.H{
			"email":    "nobody@example.com",
			"password": "password123",
		})

		mockService.EXPECT().
			Login(gomock.Any(), user.LoginRequest{Email: "ada@example.com", Password: "wrongpass"}).
			Return(user.LoginResponse{}, usererrors.ErrInvalidCredentials)

		wWrongPass := postJSON(t, router, "/api/users/login", gin.H{
			"email":    "ada@example.com",
			"password": "wrongpass",
		})

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
		assert.JSONEq(t, wUnknown.Body.String(), wWrongPass.Body.String())

		var res map[string]interface{}
		json.Unmarshal(wUnknown.Body.Bytes(), &res)
		assert.Equal(t, apperror.CodeUnauthorized, res["code"])
		assert.Equal(t, "Invalid email or password", res["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
