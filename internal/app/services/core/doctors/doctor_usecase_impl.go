package doctors

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	UserRestClient   contracts.UserRestClient
	SessionService   contracts.SessionService
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	userRestClient contracts.UserRestClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		UserRestClient:   userRestClient,
		SessionService:   sessionService,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, sessionData string, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	existing, err := uc.DoctorRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDoctorProfileAlreadyExist(nil)
	}

	now := time.Now()
	doctor := &models.Doctor{
		UserID:            session.UserID,
		Specializations:   request.Specializations,
		Qualifications:    mapQualifications(request.Qualifications),
		Availability:      mapAvailability(request.Availability),
		ConsultationFee:   request.ConsultationFee,
		YearsOfExperience: request.YearsOfExperience,
		Bio:               request.Bio,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctor.ID = doctorID

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context, specialization string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx, specialization)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		response = append(response, *uc.buildDoctorResponse(ctx, &doctors[i]))
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) FindByUserID(ctx context.Context, userID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, sessionData, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.authorizeDoctorMutation(ctx, sessionData, doctorID)
	if err != nil {
		return nil, err
	}

	doctor.Specializations = request.Specializations
	doctor.Qualifications = mapQualifications(request.Qualifications)
	doctor.ConsultationFee = request.ConsultationFee
	doctor.YearsOfExperience = request.YearsOfExperience
	doctor.Bio = request.Bio
	doctor.UpdatedAt = time.Now()

	err = uc.DoctorRepository.UpdateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UpdateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) UpdateAvailability(ctx context.Context, sessionData, doctorID string, request *requests.UpdateAvailability) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.authorizeDoctorMutation(ctx, sessionData, doctorID)
	if err != nil {
		return nil, err
	}

	availability := mapAvailability(request.Availability)
	err = uc.DoctorRepository.UpdateAvailability(ctx, doctorID, availability)
	if err != nil {
		return nil, err
	}
	doctor.Availability = availability

	uc.Log.Info("doctorUsecase.UpdateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return uc.buildDoctorResponse(ctx, doctor), nil
}

// authorizeDoctorMutation loads the doctor and checks the caller owns the profile or
// is an admin.
func (uc *doctorUsecase) authorizeDoctorMutation(ctx context.Context, sessionData, doctorID string) (*models.Doctor, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if !session.IsAdmin() && doctor.UserID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	return doctor, nil
}

// buildDoctorResponse enriches the profile with the owning user's name and email.
// A failed lookup only drops the enriched fields.
func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) *responses.Doctor {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	response := &responses.Doctor{
		ID:                doctor.ID,
		UserID:            doctor.UserID,
		Specializations:   doctor.Specializations,
		Qualifications:    doctor.Qualifications,
		Availability:      doctor.Availability,
		ConsultationFee:   doctor.ConsultationFee,
		YearsOfExperience: doctor.YearsOfExperience,
		Bio:               doctor.Bio,
	}

	user, err := uc.UserRestClient.FindUserByID(ctx, doctor.UserID)
	if err != nil {
		uc.Log.Warn("doctorUsecase.buildDoctorResponse user lookup failed, omitting fields",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, doctor.UserID),
			zap.Error(err),
		)
		return response
	}

	response.Fullname = user.Fullname
	response.Email = user.Email
	return response
}

func mapQualifications(entries []requests.QualificationEntry) []models.Qualification {
	qualifications := make([]models.Qualification, 0, len(entries))
	for _, entry := range entries {
		qualifications = append(qualifications, models.Qualification{
			Degree:      entry.Degree,
			Institution: entry.Institution,
			Year:        entry.Year,
		})
	}
	return qualifications
}

func mapAvailability(entries []requests.DayAvailabilityEntry) []models.DayAvailability {
	availability := make([]models.DayAvailability, 0, len(entries))
	for _, entry := range entries {
		availability = append(availability, models.DayAvailability{
			Day:         entry.Day,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
			IsAvailable: entry.IsAvailable,
		})
	}
	return availability
}
