package appointments

import (
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const notificationDispatchTimeout = 10 * time.Second

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	DoctorRestClient       contracts.DoctorRestClient
	UserRestClient         contracts.UserRestClient
	NotificationRestClient contracts.NotificationRestClient
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRestClient contracts.DoctorRestClient,
	userRestClient contracts.UserRestClient,
	notificationRestClient contracts.NotificationRestClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository:  appointmentRepository,
		DoctorRestClient:       doctorRestClient,
		UserRestClient:         userRestClient,
		NotificationRestClient: notificationRestClient,
		SessionService:         sessionService,
		Log:                    logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	request.PatientID = session.UserID

	doctor, err := uc.DoctorRestClient.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	weekday, err := utils.WeekdayNameFromDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	window, found := availabilityForDay(doctor.Availability, weekday)
	if !found || !window.IsAvailable {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	endTime := utils.CalculateSlotEndTime(request.StartTime)
	if !utils.IsTimeWithinRange(request.StartTime, window.StartTime, window.EndTime) {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}
	if endTime != window.EndTime && !utils.IsTimeWithinRange(endTime, window.StartTime, window.EndTime) {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	active, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, request.DoctorID, request.Date)
	if err != nil {
		return nil, err
	}
	if bookedStartTimeSet(active)[request.StartTime] {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   endTime,
		Status:    constvars.AppointmentStatusScheduled,
		Reason:    request.Reason,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	go uc.dispatchAppointmentEvent(requestID, appointmentID, constvars.AppointmentEventBooked)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string, query *requests.AppointmentQuery) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Patients and doctors only ever see their own appointments, whatever the
	// query says. Admins query freely.
	switch {
	case session.IsPatient():
		query.PatientID = session.UserID
	case session.IsDoctor():
		doctor, err := uc.DoctorRestClient.FindDoctorByUserID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		query.DoctorID = doctor.ID
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, *uc.buildAppointmentResponse(ctx, &appointments[i]))
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	if err := uc.authorizeAppointmentAccess(ctx, session, appointment); err != nil {
		return nil, err
	}

	return uc.buildAppointmentResponse(ctx, appointment), nil
}

// FindByIDInternal serves service-to-service reads. It skips the session check
// and the name enrichment; callers only need the raw record.
func (uc *appointmentUsecase) FindByIDInternal(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	return &responses.Appointment{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         appointment.DoctorID,
		Date:             appointment.Date,
		StartTime:        appointment.StartTime,
		EndTime:          appointment.EndTime,
		Status:           appointment.Status,
		Reason:           appointment.Reason,
		Notes:            appointment.Notes,
		NotificationSent: appointment.NotificationSent,
	}, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	// Completed and cancelled are terminal.
	if appointment.IsTerminal() {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	if err := uc.authorizeStatusChange(ctx, session, appointment, request.Status); err != nil {
		return nil, err
	}

	err = uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status, request.Notes)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}

	go uc.dispatchAppointmentEvent(requestID, appointmentID, request.Status)

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, request.Status),
	)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	doctor, err := uc.DoctorRestClient.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	weekday, err := utils.WeekdayNameFromDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	response := &responses.AvailableSlots{
		DoctorID: doctorID,
		Date:     date,
		Slots:    []string{},
	}

	window, found := availabilityForDay(doctor.Availability, weekday)
	if !found || !window.IsAvailable {
		return response, nil
	}

	active, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	response.Slots = generateSlots(window, bookedStartTimeSet(active))

	uc.Log.Info("appointmentUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(response.Slots)),
	)
	return response, nil
}

// authorizeAppointmentAccess lets the owning patient, the appointment's doctor, or
// an admin read the appointment.
func (uc *appointmentUsecase) authorizeAppointmentAccess(ctx context.Context, session *models.Session, appointment *models.Appointment) error {
	if session.IsAdmin() {
		return nil
	}
	if session.IsPatient() {
		if appointment.PatientID != session.UserID {
			return exceptions.ErrNotResourceOwner(nil)
		}
		return nil
	}
	if session.IsDoctor() {
		doctor, err := uc.DoctorRestClient.FindDoctorByUserID(ctx, session.UserID)
		if err != nil {
			return err
		}
		if appointment.DoctorID != doctor.ID {
			return exceptions.ErrNotResourceOwner(nil)
		}
		return nil
	}
	return exceptions.ErrNotMatchRoleType(nil)
}

// authorizeStatusChange enforces who may move an appointment where: patients may
// only cancel their own, doctors may complete or cancel their own, admins may do
// either on any appointment.
func (uc *appointmentUsecase) authorizeStatusChange(ctx context.Context, session *models.Session, appointment *models.Appointment, newStatus string) error {
	if session.IsAdmin() {
		return nil
	}
	if session.IsPatient() {
		if appointment.PatientID != session.UserID {
			return exceptions.ErrNotResourceOwner(nil)
		}
		if newStatus != constvars.AppointmentStatusCancelled {
			return exceptions.ErrNotMatchRoleType(nil)
		}
		return nil
	}
	if session.IsDoctor() {
		doctor, err := uc.DoctorRestClient.FindDoctorByUserID(ctx, session.UserID)
		if err != nil {
			return err
		}
		if appointment.DoctorID != doctor.ID {
			return exceptions.ErrNotResourceOwner(nil)
		}
		return nil
	}
	return exceptions.ErrNotMatchRoleType(nil)
}

// dispatchAppointmentEvent tells the notification service about a state change.
// It runs detached from the request and never rolls the appointment back: a
// failure is logged and dropped.
func (uc *appointmentUsecase) dispatchAppointmentEvent(requestID, appointmentID, event string) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationDispatchTimeout)
	defer cancel()

	err := uc.NotificationRestClient.SendAppointmentEvent(ctx, &requests.AppointmentEvent{
		AppointmentID: appointmentID,
		Event:         event,
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.dispatchAppointmentEvent failed, appointment unaffected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingEventKey, event),
			zap.Error(err),
		)
		return
	}

	if err := uc.AppointmentRepository.MarkNotificationSent(ctx, appointmentID); err != nil {
		uc.Log.Warn("appointmentUsecase.dispatchAppointmentEvent failed to mark notification sent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}
}

// buildAppointmentResponse enriches the record with patient and doctor names. A
// failed lookup only drops the enriched field.
func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	response := &responses.Appointment{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         appointment.DoctorID,
		Date:             appointment.Date,
		StartTime:        appointment.StartTime,
		EndTime:          appointment.EndTime,
		Status:           appointment.Status,
		Reason:           appointment.Reason,
		Notes:            appointment.Notes,
		NotificationSent: appointment.NotificationSent,
	}

	patient, err := uc.UserRestClient.FindUserByID(ctx, appointment.PatientID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.buildAppointmentResponse patient lookup failed, omitting field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
			zap.Error(err),
		)
	} else {
		response.PatientName = patient.Fullname
	}

	doctor, err := uc.DoctorRestClient.FindDoctorByID(ctx, appointment.DoctorID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.buildAppointmentResponse doctor lookup failed, omitting field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.Error(err),
		)
	} else {
		response.DoctorName = doctor.Fullname
	}

	return response
}

func availabilityForDay(availability []models.DayAvailability, day string) (models.DayAvailability, bool) {
	for _, entry := range availability {
		if entry.Day == day {
			return entry, true
		}
	}
	return models.DayAvailability{}, false
}
