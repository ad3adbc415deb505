package notifications

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

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
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

type MockDoctorRestClient struct {
	mock.Mock
}

func (m *MockDoctorRestClient) FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
}

func (m *MockDoctorRestClient) FindDoctorByUserID(ctx context.Context, userID string) (*responses.Doctor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Doctor), args.Error(1)
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

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) QueueEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
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

type usecaseMocks struct {
	repo              *MockNotificationRepository
	appointmentClient *MockAppointmentRestClient
	doctorClient      *MockDoctorRestClient
	userClient        *MockUserRestClient
	mailer            *MockMailerService
	sessions          *MockSessionService
}

func newTestUsecase() (*notificationUsecase, usecaseMocks) {
	mocks := usecaseMocks{
		repo:              new(MockNotificationRepository),
		appointmentClient: new(MockAppointmentRestClient),
		doctorClient:      new(MockDoctorRestClient),
		userClient:        new(MockUserRestClient),
		mailer:            new(MockMailerService),
		sessions:          new(MockSessionService),
	}
	uc := NewNotificationUsecase(
		mocks.repo,
		mocks.appointmentClient,
		mocks.doctorClient,
		mocks.userClient,
		mocks.mailer,
		mocks.sessions,
		zap.NewNop(),
	).(*notificationUsecase)
	return uc, mocks
}

func bookedEvent() *requests.AppointmentEvent {
	return &requests.AppointmentEvent{
		AppointmentID: "appointment-1",
		Event:         constvars.AppointmentEventBooked,
	}
}

func testAppointment() *responses.Appointment {
	return &responses.Appointment{
		ID:        "appointment-1",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Date:      "2025-01-06",
		StartTime: "09:30",
		Status:    constvars.AppointmentStatusScheduled,
	}
}

func TestHandleAppointmentEvent(t *testing.T) {
	t.Run("notifies both recipients and queues both emails", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(testAppointment(), nil)
		m.doctorClient.On("FindDoctorByID", mock.Anything, "doctor-1").
			Return(&responses.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		m.userClient.On("FindUserByID", mock.Anything, "patient-1").
			Return(&responses.UserProfile{ID: "patient-1", Email: "patient@example.com"}, nil)
		m.userClient.On("FindUserByID", mock.Anything, "doctor-user-1").
			Return(&responses.UserProfile{ID: "doctor-user-1", Email: "doctor@example.com"}, nil)
		m.mailer.On("QueueEmail", mock.Anything, mock.AnythingOfType("*requests.EmailPayload")).Return(nil).Twice()
		m.repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == constvars.NotificationTypeAppointment && n.RelatedID == "appointment-1" && n.SentViaEmail
		})).Return("notification-x", nil).Twice()

		outcome, err := uc.HandleAppointmentEvent(context.Background(), bookedEvent())

		assert.NoError(t, err)
		assert.Equal(t, 2, outcome.NotificationsCreated)
		assert.Equal(t, 2, outcome.EmailsQueued)
		m.repo.AssertExpectations(t)
		m.mailer.AssertExpectations(t)
	})

	t.Run("a failed doctor lookup still notifies the patient", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(testAppointment(), nil)
		m.doctorClient.On("FindDoctorByID", mock.Anything, "doctor-1").
			Return(nil, exceptions.ErrUpstreamNotFound(nil, "doctor-service"))
		m.userClient.On("FindUserByID", mock.Anything, "patient-1").
			Return(&responses.UserProfile{ID: "patient-1", Email: "patient@example.com"}, nil)
		m.mailer.On("QueueEmail", mock.Anything, mock.Anything).Return(nil).Once()
		m.repo.On("CreateNotification", mock.Anything, mock.Anything).Return("notification-1", nil).Once()

		outcome, err := uc.HandleAppointmentEvent(context.Background(), bookedEvent())

		assert.NoError(t, err)
		assert.Equal(t, 1, outcome.NotificationsCreated)
		assert.Equal(t, 1, outcome.EmailsQueued)
	})

	t.Run("a failed email publish still records the notification", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").Return(testAppointment(), nil)
		m.doctorClient.On("FindDoctorByID", mock.Anything, "doctor-1").
			Return(&responses.Doctor{ID: "doctor-1", UserID: "doctor-user-1"}, nil)
		m.userClient.On("FindUserByID", mock.Anything, mock.Anything).
			Return(&responses.UserProfile{Email: "someone@example.com"}, nil)
		m.mailer.On("QueueEmail", mock.Anything, mock.Anything).
			Return(exceptions.ErrPublishMailerMessage(nil))
		m.repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return !n.SentViaEmail
		})).Return("notification-x", nil).Twice()

		outcome, err := uc.HandleAppointmentEvent(context.Background(), bookedEvent())

		assert.NoError(t, err)
		assert.Equal(t, 2, outcome.NotificationsCreated)
		assert.Equal(t, 0, outcome.EmailsQueued)
	})

	t.Run("unknown appointment fails the whole event", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.appointmentClient.On("FindAppointmentByID", mock.Anything, "appointment-1").
			Return(nil, exceptions.ErrUpstreamNotFound(nil, "appointment-service"))

		_, err := uc.HandleAppointmentEvent(context.Background(), bookedEvent())

		assert.Error(t, err)
		m.repo.AssertNotCalled(t, "CreateNotification")
	})
}

func TestMarkAsRead(t *testing.T) {
	session := &models.Session{UserID: "patient-1", Role: constvars.RolePatient}

	t.Run("owner can mark as read", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		m.repo.On("FindByID", mock.Anything, "notification-1").
			Return(&models.Notification{ID: "notification-1", UserID: "patient-1"}, nil)
		m.repo.On("MarkAsRead", mock.Anything, "notification-1").Return(nil)

		err := uc.MarkAsRead(context.Background(), "session-json", "notification-1")
		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		m.repo.On("FindByID", mock.Anything, "notification-1").
			Return(&models.Notification{ID: "notification-1", UserID: "someone-else"}, nil)

		err := uc.MarkAsRead(context.Background(), "session-json", "notification-1")

		assert.Error(t, err)
		m.repo.AssertNotCalled(t, "MarkAsRead")
	})

	t.Run("missing notification is a 404", func(t *testing.T) {
		uc, m := newTestUsecase()

		m.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(session, nil)
		m.repo.On("FindByID", mock.Anything, "notification-1").Return(nil, nil)

		err := uc.MarkAsRead(context.Background(), "session-json", "notification-1")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestCountUnreadBySession(t *testing.T) {
	uc, m := newTestUsecase()

	m.sessions.On("ParseSessionData", mock.Anything, "session-json").
		Return(&models.Session{UserID: "patient-1", Role: constvars.RolePatient}, nil)
	m.repo.On("CountUnread", mock.Anything, "patient-1").Return(int64(3), nil)

	result, err := uc.CountUnreadBySession(context.Background(), "session-json")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.Count)
}
