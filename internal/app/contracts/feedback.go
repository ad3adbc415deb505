package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, sessionData string, request *requests.CreateFeedback) (*responses.Feedback, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*responses.Feedback, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]responses.Feedback, error)
	GetDoctorStats(ctx context.Context, doctorID string) (*responses.FeedbackStats, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) (feedbackID string, err error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error)
	AggregateDoctorStats(ctx context.Context, doctorID string) (*responses.FeedbackStats, error)
}
