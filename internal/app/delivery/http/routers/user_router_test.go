package routers

import (
	"bytes"
	"carebook-service/internal/app/config"
	"carebook-service/internal/app/delivery/http/middlewares"
	"carebook-service/internal/app/services/core/auth"
	"carebook-service/internal/app/services/core/users"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Auth), args.Error(1)
}

func (m *MockAuthUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) GetUserProfileBySession(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func (m *MockUserUsecase) UpdateUserProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*responses.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

func newTestRouter(t *testing.T, authUsecase *MockAuthUsecase, userUsecase *MockUserUsecase) *chi.Mux {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:        "v1",
			EndpointPrefix: "v1",
			MaxRequests:    100,
		},
		JWT: config.JWT{Secret: "test-secret"},
	}

	authController := auth.NewAuthController(logger, authUsecase)
	userController := users.NewUserController(logger, userUsecase)
	middlewareInstance := middlewares.NewMiddlewares(logger, nil, internalConfig)

	router := chi.NewRouter()
	SetupUserServiceRoutes(router, internalConfig, middlewareInstance, authController, userController)
	return router
}

func TestUserRouter_Register(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		mockAuthUsecase.On("RegisterUser", mock.Anything, mock.AnythingOfType("*requests.Register")).
			Return(&responses.Auth{Token: "jwt-token"}, nil)

		requestBody := requests.Register{
			Email:    "new@example.com",
			Password: "Str0ng!Pass",
			Fullname: "New User",
			Role:     "patient",
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		req := httptest.NewRequest("POST", "/v1/auth/register", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		jsonBody, _ := json.Marshal(map[string]string{"email": "new@example.com"})

		req := httptest.NewRequest("POST", "/v1/auth/register", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAuthUsecase.AssertNotCalled(t, "RegisterUser")
	})
}

func TestUserRouter_Profile(t *testing.T) {
	t.Run("missing token returns 401", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		req := httptest.NewRequest("GET", "/v1/users/profile", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserUsecase.AssertNotCalled(t, "GetUserProfileBySession")
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		req := httptest.NewRequest("GET", "/v1/users/profile", nil)
		req.Header.Set("x-auth-token", "not-a-jwt")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserUsecase.AssertNotCalled(t, "GetUserProfileBySession")
	})
}

func TestUserRouter_GetUserByID(t *testing.T) {
	t.Run("lookup needs no session", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockUserUsecase := new(MockUserUsecase)
		router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

		mockUserUsecase.On("GetUserByID", mock.Anything, "user-1").
			Return(&responses.UserProfile{ID: "user-1", Fullname: "Some User"}, nil)

		req := httptest.NewRequest("GET", "/v1/users/user-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserUsecase.AssertExpectations(t)
	})
}

func TestUserRouter_Health(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	mockUserUsecase := new(MockUserUsecase)
	router := newTestRouter(t, mockAuthUsecase, mockUserUsecase)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "user-service")
}
