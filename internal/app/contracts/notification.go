package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type NotificationUsecase interface {
	CreateNotification(ctx context.Context, request *requests.CreateNotification) (*responses.Notification, error)
	HandleAppointmentEvent(ctx context.Context, request *requests.AppointmentEvent) (*responses.AppointmentEventOutcome, error)
	FindBySession(ctx context.Context, sessionData string, unreadOnly bool) ([]responses.Notification, error)
	MarkAsRead(ctx context.Context, sessionData, notificationID string) error
	CountUnreadBySession(ctx context.Context, sessionData string) (*responses.UnreadCount, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (notificationID string, err error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUserID(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type MailerService interface {
	QueueEmail(ctx context.Context, request *requests.EmailPayload) error
}
