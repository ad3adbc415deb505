package feedbacks

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

type feedbackUsecase struct {
	FeedbackRepository    contracts.FeedbackRepository
	AppointmentRestClient contracts.AppointmentRestClient
	UserRestClient        contracts.UserRestClient
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

func NewFeedbackUsecase(
	feedbackRepository contracts.FeedbackRepository,
	appointmentRestClient contracts.AppointmentRestClient,
	userRestClient contracts.UserRestClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.FeedbackUsecase {
	return &feedbackUsecase{
		FeedbackRepository:    feedbackRepository,
		AppointmentRestClient: appointmentRestClient,
		UserRestClient:        userRestClient,
		SessionService:        sessionService,
		Log:                   logger,
	}
}

func (uc *feedbackUsecase) CreateFeedback(ctx context.Context, sessionData string, request *requests.CreateFeedback) (*responses.Feedback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.CreateFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	request.PatientID = session.UserID

	appointment, err := uc.AppointmentRestClient.FindAppointmentByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID != session.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrAppointmentNotCompleted(nil)
	}

	existing, err := uc.FeedbackRepository.FindByAppointmentID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrFeedbackAlreadyExist(nil)
	}

	now := time.Now()
	feedback := &models.Feedback{
		AppointmentID: request.AppointmentID,
		PatientID:     request.PatientID,
		DoctorID:      appointment.DoctorID,
		Rating:        request.Rating,
		Comment:       request.Comment,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	feedbackID, err := uc.FeedbackRepository.CreateFeedback(ctx, feedback)
	if err != nil {
		uc.Log.Error("feedbackUsecase.CreateFeedback error creating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	feedback.ID = feedbackID

	uc.Log.Info("feedbackUsecase.CreateFeedback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
	)
	return uc.buildFeedbackResponse(ctx, feedback), nil
}

func (uc *feedbackUsecase) FindByAppointmentID(ctx context.Context, appointmentID string) (*responses.Feedback, error) {
	feedback, err := uc.FeedbackRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, exceptions.ErrFeedbackNotExist(nil)
	}
	return uc.buildFeedbackResponse(ctx, feedback), nil
}

func (uc *feedbackUsecase) FindByDoctorID(ctx context.Context, doctorID string) ([]responses.Feedback, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.FindByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	feedbacks, err := uc.FeedbackRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Feedback, 0, len(feedbacks))
	for i := range feedbacks {
		response = append(response, *uc.buildFeedbackResponse(ctx, &feedbacks[i]))
	}

	uc.Log.Info("feedbackUsecase.FindByDoctorID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *feedbackUsecase) GetDoctorStats(ctx context.Context, doctorID string) (*responses.FeedbackStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("feedbackUsecase.GetDoctorStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	return uc.FeedbackRepository.AggregateDoctorStats(ctx, doctorID)
}

// buildFeedbackResponse enriches the record with the patient's name. A failed
// lookup only drops the enriched field.
func (uc *feedbackUsecase) buildFeedbackResponse(ctx context.Context, feedback *models.Feedback) *responses.Feedback {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	response := &responses.Feedback{
		ID:            feedback.ID,
		AppointmentID: feedback.AppointmentID,
		PatientID:     feedback.PatientID,
		DoctorID:      feedback.DoctorID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
	}

	patient, err := uc.UserRestClient.FindUserByID(ctx, feedback.PatientID)
	if err != nil {
		uc.Log.Warn("feedbackUsecase.buildFeedbackResponse patient lookup failed, omitting field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, feedback.PatientID),
			zap.Error(err),
		)
		return response
	}

	response.PatientName = patient.Fullname
	return response
}
