package notifications

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	AppointmentRestClient  contracts.AppointmentRestClient
	DoctorRestClient       contracts.DoctorRestClient
	UserRestClient         contracts.UserRestClient
	MailerService          contracts.MailerService
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	appointmentRestClient contracts.AppointmentRestClient,
	doctorRestClient contracts.DoctorRestClient,
	userRestClient contracts.UserRestClient,
	mailerService contracts.MailerService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		AppointmentRestClient:  appointmentRestClient,
		DoctorRestClient:       doctorRestClient,
		UserRestClient:         userRestClient,
		MailerService:          mailerService,
		SessionService:         sessionService,
		Log:                    logger,
	}
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, request *requests.CreateNotification) (*responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.CreateNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	now := time.Now()
	notification := &models.Notification{
		UserID:    request.UserID,
		Message:   request.Message,
		Type:      request.Type,
		RelatedID: request.RelatedID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	notificationID, err := uc.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		return nil, err
	}
	notification.ID = notificationID

	return buildNotificationResponse(notification), nil
}

// HandleAppointmentEvent fans an appointment state change out to the patient and
// the doctor. Each recipient is handled independently: a failed lookup, insert,
// or email publish is logged and skipped, never failing the whole event.
func (uc *notificationUsecase) HandleAppointmentEvent(ctx context.Context, request *requests.AppointmentEvent) (*responses.AppointmentEventOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.HandleAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingEventKey, request.Event),
	)

	appointment, err := uc.AppointmentRestClient.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}

	outcome := &responses.AppointmentEventOutcome{
		AppointmentID: request.AppointmentID,
		Event:         request.Event,
	}

	uc.notifyRecipient(ctx, outcome, appointment.PatientID,
		patientMessage(request.Event, appointment.Date, appointment.StartTime),
		request.AppointmentID)

	doctor, err := uc.DoctorRestClient.FindDoctorByID(ctx, appointment.DoctorID)
	if err != nil {
		uc.Log.Warn("notificationUsecase.HandleAppointmentEvent doctor lookup failed, skipping recipient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.Error(err),
		)
	} else {
		uc.notifyRecipient(ctx, outcome, doctor.UserID,
			doctorMessage(request.Event, appointment.Date, appointment.StartTime),
			request.AppointmentID)
	}

	uc.Log.Info("notificationUsecase.HandleAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Int(constvars.LoggingResponseCountKey, outcome.NotificationsCreated),
	)
	return outcome, nil
}

func (uc *notificationUsecase) FindBySession(ctx context.Context, sessionData string, unreadOnly bool) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindBySession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.NotificationRepository.FindByUserID(ctx, session.UserID, unreadOnly)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Notification, 0, len(notifications))
	for i := range notifications {
		response = append(response, *buildNotificationResponse(&notifications[i]))
	}
	return response, nil
}

func (uc *notificationUsecase) MarkAsRead(ctx context.Context, sessionData, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return exceptions.ErrNotificationNotExist(nil)
	}
	if !session.IsAdmin() && notification.UserID != session.UserID {
		return exceptions.ErrNotResourceOwner(nil)
	}

	return uc.NotificationRepository.MarkAsRead(ctx, notificationID)
}

func (uc *notificationUsecase) CountUnreadBySession(ctx context.Context, sessionData string) (*responses.UnreadCount, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	count, err := uc.NotificationRepository.CountUnread(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return &responses.UnreadCount{Count: count}, nil
}

// notifyRecipient inserts the in-app notification and queues the email for one
// recipient, updating the outcome counters. Failures only skip that step.
func (uc *notificationUsecase) notifyRecipient(ctx context.Context, outcome *responses.AppointmentEventOutcome, userID, message, appointmentID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := time.Now()
	notification := &models.Notification{
		UserID:    userID,
		Message:   message,
		Type:      constvars.NotificationTypeAppointment,
		RelatedID: appointmentID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	user, err := uc.UserRestClient.FindUserByID(ctx, userID)
	if err != nil {
		uc.Log.Warn("notificationUsecase.notifyRecipient user lookup failed, skipping email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		user = nil
	}

	if user != nil && user.Email != "" {
		err = uc.MailerService.QueueEmail(ctx, &requests.EmailPayload{
			ReceiverEmail: user.Email,
			Subject:       "Appointment update",
			Body:          message,
		})
		if err != nil {
			uc.Log.Warn("notificationUsecase.notifyRecipient email publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, user.Email),
				zap.Error(err),
			)
		} else {
			notification.SentViaEmail = true
			outcome.EmailsQueued++
		}
	}

	notificationID, err := uc.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		uc.Log.Warn("notificationUsecase.notifyRecipient insert failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return
	}
	notification.ID = notificationID
	outcome.NotificationsCreated++
}

func patientMessage(event, date, startTime string) string {
	switch event {
	case constvars.AppointmentEventBooked:
		return fmt.Sprintf("Your appointment on %s at %s has been booked", date, startTime)
	case constvars.AppointmentEventCompleted:
		return fmt.Sprintf("Your appointment on %s at %s has been completed", date, startTime)
	default:
		return fmt.Sprintf("Your appointment on %s at %s has been cancelled", date, startTime)
	}
}

func doctorMessage(event, date, startTime string) string {
	switch event {
	case constvars.AppointmentEventBooked:
		return fmt.Sprintf("A new appointment has been booked on %s at %s", date, startTime)
	case constvars.AppointmentEventCompleted:
		return fmt.Sprintf("The appointment on %s at %s has been completed", date, startTime)
	default:
		return fmt.Sprintf("The appointment on %s at %s has been cancelled", date, startTime)
	}
}

func buildNotificationResponse(notification *models.Notification) *responses.Notification {
	return &responses.Notification{
		ID:           notification.ID,
		UserID:       notification.UserID,
		Message:      notification.Message,
		Type:         notification.Type,
		RelatedID:    notification.RelatedID,
		IsRead:       notification.IsRead,
		SentViaEmail: notification.SentViaEmail,
		CreatedAt:    notification.CreatedAt,
	}
}
