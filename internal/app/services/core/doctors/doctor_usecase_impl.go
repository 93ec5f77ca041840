package doctors

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
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

type doctorUsecase struct {
	DoctorBackendClient contracts.DoctorBackendClient
	Log                 *zap.Logger
}

func NewDoctorUsecase(doctorBackendClient contracts.DoctorBackendClient, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorBackendClient: doctorBackendClient,
			Log:                 logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) GetApprovedDoctors(ctx context.Context, session *models.Session) ([]responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetApprovedDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorBackendClient.GetApprovedDoctors(ctx, session.BackendToken)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetApprovedDoctors error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.GetApprovedDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	return NewDoctorCards(doctors), nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context, session *models.Session) ([]responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role())
	}

	doctors, err := uc.DoctorBackendClient.GetDoctors(ctx, session.BackendToken)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctors error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return NewDoctorCards(doctors), nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorBackendClient.GetDoctor(ctx, session.BackendToken, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctor error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	card := NewDoctorCard(doctor)
	return &card, nil
}

// ApplyDoctor submits the session user's application. Timings are sent as "HH:mm".
func (uc *doctorUsecase) ApplyDoctor(ctx context.Context, session *models.Session, request *requests.ApplyDoctor) (*responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.ApplyDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if session.IsDoctor {
		return nil, exceptions.ErrNotMatchRoleType(errors.New("user is already a doctor"), session.Role())
	}

	err := normalizeTimings(request)
	if err != nil {
		return nil, err
	}
	request.UserID = session.UserID

	doctor, err := uc.DoctorBackendClient.ApplyDoctor(ctx, session.BackendToken, request)
	if err != nil {
		uc.Log.Error("doctorUsecase.ApplyDoctor error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_applied", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	card := NewDoctorCard(doctor)
	return &card, nil
}

func (uc *doctorUsecase) UpdateDoctorProfile(ctx context.Context, session *models.Session, request *requests.ApplyDoctor) (*responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateDoctorProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if !session.IsDoctor {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role())
	}

	err := normalizeTimings(request)
	if err != nil {
		return nil, err
	}
	request.UserID = session.UserID

	doctor, err := uc.DoctorBackendClient.UpdateDoctor(ctx, session.BackendToken, request)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateDoctorProfile error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	card := NewDoctorCard(doctor)
	return &card, nil
}

func (uc *doctorUsecase) UpdateDoctorStatus(ctx context.Context, session *models.Session, request *requests.UpdateDoctorStatus) (*responses.DoctorCard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateDoctorStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if !session.IsAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role())
	}

	doctor, err := uc.DoctorBackendClient.UpdateDoctorStatus(ctx, session.BackendToken, request)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateDoctorStatus error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_status_updated", requestID,
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String("status", request.Status),
	)

	card := NewDoctorCard(doctor)
	return &card, nil
}

func normalizeTimings(request *requests.ApplyDoctor) error {
	fromTime, err := utils.ParseClock(request.FromTime)
	if err != nil {
		return exceptions.ErrInvalidClock(err, request.FromTime)
	}
	toTime, err := utils.ParseClock(request.ToTime)
	if err != nil {
		return exceptions.ErrInvalidClock(err, request.ToTime)
	}
	request.FromTime = fromTime
	request.ToTime = toTime
	return nil
}
