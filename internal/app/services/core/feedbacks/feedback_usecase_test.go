package feedbacks

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

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	args := m.Called(ctx, feedback)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) AggregateDoctorStats(ctx context.Context, doctorID string) (*responses.FeedbackStats, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.FeedbackStats), args.Error(1)
}

type MockAppointmentRestClient struct {
	mock.Mock
}

func (m *MockAppointmentRestClient) FindAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
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

func newTestUsecase() (*feedbackUsecase, *MockFeedbackRepository, *MockAppointmentRestClient, *MockUserRestClient, *MockSessionService) {
	repo := new(MockFeedbackRepository)
	appointmentClient := new(MockAppointmentRestClient)
	userClient := new(MockUserRestClient)
	sessions := new(MockSessionService)

	uc := NewFeedbackUsecase(repo, appointmentClient, userClient, sessions, zap.NewNop()).(*feedbackUsecase)
	return uc, repo, appointmentClient, userClient, sessions
}

func TestCreateFeedback(t *testing.T) {
	session := &models.Session{UserID: "patient-1", Role: constvars.RolePatient}

	completedAppointment := func() *responses.Appointment {
		return &responses.Appointment{
			ID:        "appointment-1",
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			Status:    constvars.AppointmentStatusCompleted,
		}
	}

	request := func() *requests.CreateFeedback {
		return &requests.CreateFeedback{
			AppointmentID: "appointment-1",
			Rating:        5,
			Comment:       "great",
		}
	}

	t.Run("accepts feedback on an own completed appointment", func(t *testing.T) {
		uc, repo, appointmentClient, userClient, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(completedAppointment(), nil)
		repo.On("FindByAppointmentID", mock.Anything, "appointment-1").Return(nil, nil)
		repo.On("CreateFeedback", mock.Anything, mock.AnythingOfType("*models.Feedback")).Return("feedback-1", nil)
		userClient.On("FindUserByID", mock.Anything, "patient-1").
			Return(&responses.UserProfile{Fullname: "Pat Example"}, nil)

		result, err := uc.CreateFeedback(context.Background(), "session-json", request())

		assert.NoError(t, err)
		assert.Equal(t, "feedback-1", result.ID)
		assert.Equal(t, "doctor-1", result.DoctorID)
		assert.Equal(t, "Pat Example", result.PatientName)
	})

	t.Run("rejects feedback on a scheduled appointment", func(t *testing.T) {
		uc, repo, appointmentClient, _, sessions := newTestUsecase()

		scheduled := completedAppointment()
		scheduled.Status = constvars.AppointmentStatusScheduled
		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(scheduled, nil)

		_, err := uc.CreateFeedback(context.Background(), "session-json", request())

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientAppointmentNotCompleted, customErr.ClientMessage)
		repo.AssertNotCalled(t, "CreateFeedback")
	})

	t.Run("rejects a second feedback for the same appointment", func(t *testing.T) {
		uc, repo, appointmentClient, _, sessions := newTestUsecase()

		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(completedAppointment(), nil)
		repo.On("FindByAppointmentID", mock.Anything, "appointment-1").
			Return(&models.Feedback{ID: "feedback-1"}, nil)

		_, err := uc.CreateFeedback(context.Background(), "session-json", request())

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientFeedbackAlreadyExists, customErr.ClientMessage)
		repo.AssertNotCalled(t, "CreateFeedback")
	})

	t.Run("rejects feedback on someone else's appointment", func(t *testing.T) {
		uc, repo, appointmentClient, _, sessions := newTestUsecase()

		other := completedAppointment()
		other.PatientID = "patient-2"
		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(other, nil)

		_, err := uc.CreateFeedback(context.Background(), "session-json", request())

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateFeedback")
	})

	t.Run("only patients can submit", func(t *testing.T) {
		uc, repo, _, _, sessions := newTestUsecase()

		doctorSession := &models.Session{UserID: "doctor-user-1", Role: constvars.RoleDoctor}
		sessions.On("ParseSessionData", mock.Anything, "session-json").Return(doctorSession, nil)

		_, err := uc.CreateFeedback(context.Background(), "session-json", request())

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateFeedback")
	})
}

func TestFindByDoctorID(t *testing.T) {
	t.Run("a failed patient lookup only drops the name", func(t *testing.T) {
		uc, repo, _, userClient, _ := newTestUsecase()

		repo.On("FindByDoctorID", mock.Anything, "doctor-1").Return([]models.Feedback{
			{ID: "feedback-1", AppointmentID: "appointment-1", PatientID: "patient-1", DoctorID: "doctor-1", Rating: 4},
		}, nil)
		userClient.On("FindUserByID", mock.Anything, "patient-1").
			Return(nil, exceptions.ErrUpstreamNotFound(nil, "user-service"))

		result, err := uc.FindByDoctorID(context.Background(), "doctor-1")

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 4, result[0].Rating)
		assert.Empty(t, result[0].PatientName)
	})
}
