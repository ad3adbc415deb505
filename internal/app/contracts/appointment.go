package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, sessionData string, query *requests.AppointmentQuery) ([]responses.Appointment, error)
	FindByID(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error)
	FindByIDInternal(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context, query *requests.AppointmentQuery) ([]models.Appointment, error)
	FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status, notes string) error
	MarkNotificationSent(ctx context.Context, appointmentID string) error
}

// AppointmentRestClient is how other services read appointments over REST.
type AppointmentRestClient interface {
	FindAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
}

// NotificationRestClient is the fire-and-forget write path into the notification
// service. Callers never treat its error as fatal.
type NotificationRestClient interface {
	SendAppointmentEvent(ctx context.Context, request *requests.AppointmentEvent) error
}
