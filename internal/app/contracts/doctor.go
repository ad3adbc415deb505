package contracts

import (
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, sessionData string, request *requests.CreateDoctor) (*responses.Doctor, error)
	FindAll(ctx context.Context, specialization string) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, sessionData, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	UpdateAvailability(ctx context.Context, sessionData, doctorID string, request *requests.UpdateAvailability) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindAll(ctx context.Context, specialization string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	UpdateAvailability(ctx context.Context, doctorID string, availability []models.DayAvailability) error
}

// DoctorRestClient is how other services read doctor profiles over REST.
type DoctorRestClient interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	FindDoctorByUserID(ctx context.Context, userID string) (*responses.Doctor, error)
}
