package appointments

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	Log                      *zap.Logger
}

func NewAppointmentUsecase(appointmentBackendClient contracts.AppointmentBackendClient, logger *zap.Logger) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentBackendClient: appointmentBackendClient,
			Log:                      logger,
		}
	})
	return appointmentUsecaseInstance
}

// GetAppointments lists the session user's bookings. Doctors may ask for the doctor view, which
// lists the bookings made with them.
func (uc *appointmentUsecase) GetAppointments(ctx context.Context, session *models.Session, request *requests.GetAppointments) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String("view", request.View),
	)

	var (
		appointments []responses.Appointment
		err          error
	)
	switch request.View {
	case constvars.QueryParamViewDoctor:
		if !session.IsDoctor {
			return nil, exceptions.ErrNotMatchRoleType(errors.New("doctor view requires a doctor"), session.Role())
		}
		appointments, err = uc.AppointmentBackendClient.GetDoctorAppointments(ctx, session.BackendToken, session.UserID)
	default:
		appointments, err = uc.AppointmentBackendClient.GetUserAppointments(ctx, session.BackendToken, session.UserID)
	}
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAppointments error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if appointments == nil {
		appointments = []responses.Appointment{}
	}

	uc.Log.Info("appointmentUsecase.GetAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	return appointments, nil
}
