package doctors

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, specialization string) ([]models.Doctor, error) {
	args := m.Called(ctx, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) UpdateAvailability(ctx context.Context, doctorID string, availability []models.DayAvailability) error {
	args := m.Called(ctx, doctorID, availability)
	return args.Error(0)
}

type MockUserRestClient struct {
	mock.Mock
}

func (m *MockUserRestClient) FindUserByID(ctx context.Context, userID string) (*responses.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UserProfile), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestUsecase() (*doctorUsecase, *MockDoctorRepository, *MockUserRestClient, *MockSessionService) {
	repo := new(MockDoctorRepository)
	userClient := new(MockUserRestClient)
	sessions := new(MockSessionService)

	uc := NewDoctorUsecase(repo, userClient, sessions, zap.NewNop()).(*doctorUsecase)
	return uc, repo, userClient, sessions
}

func doctorSession() *models.Session {
	return &models.Session{UserID: "doctor-user-1", Role: constvars.RoleDoctor}
}

func storedDoctor() *models.Doctor {
	return &models.Doctor{
		ID:              "doctor-1",
		UserID:          "doctor-user-1",
		Specializations: []string{"cardiology"},
	}
}

func TestCreateDoctor(t *testing.T) {
	request := &requests.CreateDoctor{
		Specializations: []string{"cardiology"},
	}

	t.Run("doctor role creates a profile", func(t *testing.T) {
		uc, repo, userClient, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(doctorSession(), nil)
		repo.On("FindByUserID", mock.Anything, "doctor-user-1").Return(nil, nil)
		repo.On("CreateDoctor", mock.Anything, mock.AnythingOfType("*models.Doctor")).Return("doctor-1", nil)
		userClient.On("FindUserByID", mock.Anything, "doctor-user-1").
			Return(&responses.UserProfile{Fullname: "Dr. Who", Email: "who@example.com"}, nil)

		result, err := uc.CreateDoctor(context.Background(), "session-json", request)

		assert.NoError(t, err)
		assert.Equal(t, "doctor-1", result.ID)
		assert.Equal(t, "Dr. Who", result.Fullname)
	})

	t.Run("patient role is rejected", func(t *testing.T) {
		uc, repo, _, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").
			Return(&models.Session{UserID: "patient-1", Role: constvars.RolePatient}, nil)

		_, err := uc.CreateDoctor(context.Background(), "session-json", request)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateDoctor")
	})

	t.Run("second profile for the same user is rejected", func(t *testing.T) {
		uc, repo, _, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(doctorSession(), nil)
		repo.On("FindByUserID", mock.Anything, "doctor-user-1").Return(storedDoctor(), nil)

		_, err := uc.CreateDoctor(context.Background(), "session-json", request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientDoctorProfileExists, customErr.ClientMessage)
		repo.AssertNotCalled(t, "CreateDoctor")
	})
}

func TestUpdateDoctor(t *testing.T) {
	request := &requests.UpdateDoctor{
		Specializations: []string{"dermatology"},
	}

	t.Run("owner updates own profile", func(t *testing.T) {
		uc, repo, userClient, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(doctorSession(), nil)
		repo.On("FindByID", mock.Anything, "doctor-1").Return(storedDoctor(), nil)
		repo.On("UpdateDoctor", mock.Anything, mock.AnythingOfType("*models.Doctor")).Return(nil)
		userClient.On("FindUserByID", mock.Anything, "doctor-user-1").
			Return(&responses.UserProfile{Fullname: "Dr. Who"}, nil)

		result, err := uc.UpdateDoctor(context.Background(), "session-json", "doctor-1", request)

		assert.NoError(t, err)
		assert.Equal(t, []string{"dermatology"}, result.Specializations)
	})

	t.Run("another doctor is rejected", func(t *testing.T) {
		uc, repo, _, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").
			Return(&models.Session{UserID: "doctor-user-2", Role: constvars.RoleDoctor}, nil)
		repo.On("FindByID", mock.Anything, "doctor-1").Return(storedDoctor(), nil)

		_, err := uc.UpdateDoctor(context.Background(), "session-json", "doctor-1", request)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateDoctor")
	})

	t.Run("admin may update any profile", func(t *testing.T) {
		uc, repo, userClient, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").
			Return(&models.Session{UserID: "admin-1", Role: constvars.RoleAdmin}, nil)
		repo.On("FindByID", mock.Anything, "doctor-1").Return(storedDoctor(), nil)
		repo.On("UpdateDoctor", mock.Anything, mock.AnythingOfType("*models.Doctor")).Return(nil)
		userClient.On("FindUserByID", mock.Anything, "doctor-user-1").
			Return(&responses.UserProfile{Fullname: "Dr. Who"}, nil)

		_, err := uc.UpdateDoctor(context.Background(), "session-json", "doctor-1", request)

		assert.NoError(t, err)
	})
}

func TestFindByID(t *testing.T) {
	t.Run("a failed user lookup only drops the enriched fields", func(t *testing.T) {
		uc, repo, userClient, _ := newTestUsecase()

		repo.On("FindByID", mock.Anything, "doctor-1").Return(storedDoctor(), nil)
		userClient.On("FindUserByID", mock.Anything, "doctor-user-1").
			Return(nil, exceptions.ErrUpstreamNotFound(nil, "user-service"))

		result, err := uc.FindByID(context.Background(), "doctor-1")

		assert.NoError(t, err)
		assert.Equal(t, "doctor-1", result.ID)
		assert.Empty(t, result.Fullname)
		assert.Empty(t, result.Email)
	})

	t.Run("unknown doctor is a 404", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase()

		repo.On("FindByID", mock.Anything, "doctor-404").Return(nil, nil)

		_, err := uc.FindByID(context.Background(), "doctor-404")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
