package booking

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/slot"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	DoctorBackendClient      contracts.DoctorBackendClient
	LockerService            contracts.LockerService
	EventPublisher           contracts.EventPublisher
	BookingAttemptRepository contracts.BookingAttemptRepository
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
	flows                    *flowStore
	lockTTL                  time.Duration
	now                      func() time.Time
}

func NewBookingUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	bookingAttemptRepository contracts.BookingAttemptRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = newBookingUsecase(
			appointmentBackendClient,
			doctorBackendClient,
			redisRepository,
			lockerService,
			eventPublisher,
			bookingAttemptRepository,
			internalConfig,
			logger,
		)
	})
	return bookingUsecaseInstance
}

func newBookingUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	bookingAttemptRepository contracts.BookingAttemptRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *bookingUsecase {
	lockTTL := constvars.BookingLockExpiration
	if internalConfig.Booking.LockTTLSeconds > 0 {
		lockTTL = time.Duration(internalConfig.Booking.LockTTLSeconds) * time.Second
	}
	flowTTL := constvars.BookingFlowExpiration
	if internalConfig.Booking.FlowTTLMinutes > 0 {
		flowTTL = time.Duration(internalConfig.Booking.FlowTTLMinutes) * time.Minute
	}

	return &bookingUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		DoctorBackendClient:      doctorBackendClient,
		LockerService:            lockerService,
		EventPublisher:           eventPublisher,
		BookingAttemptRepository: bookingAttemptRepository,
		InternalConfig:           internalConfig,
		Log:                      logger,
		flows: &flowStore{
			redis:    redisRepository,
			ttl:      flowTTL,
			staleAge: lockTTL,
			now:      time.Now,
		},
		lockTTL: lockTTL,
		now:     time.Now,
	}
}

func (uc *bookingUsecase) CheckAvailability(ctx context.Context, session *models.Session, request *requests.CheckAvailability) (*responses.AvailabilityResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CheckAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.Date),
		zap.String(constvars.LoggingSlotTimeKey, request.Time),
	)

	payload, err := BuildAvailabilityPayload(request.DoctorID, request.Date, request.Time)
	if err != nil {
		uc.Log.Error("bookingUsecase.CheckAvailability error building payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	flow, err := uc.flows.load(ctx, session.SessionID, payload.DoctorID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CheckAvailability error loading booking flow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = flow.BeginCheck(payload.Date, payload.Time)
	if err != nil {
		uc.Log.Error("bookingUsecase.CheckAvailability booking still in progress",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.checkSlot(ctx, session, payload)
	if err != nil && exceptions.KindOf(err) != constvars.ErrorKindAvailabilityConflict {
		uc.recordAttempt(ctx, session, constvars.BookingAttemptKindCheck, payload.DoctorID, payload.Date, payload.Time, "", err)
		return nil, err
	}

	available := err == nil
	if resolveErr := flow.ResolveCheck(available); resolveErr != nil {
		return nil, resolveErr
	}
	if saveErr := uc.flows.save(ctx, session.SessionID, payload.DoctorID, flow); saveErr != nil {
		uc.Log.Error("bookingUsecase.CheckAvailability error saving booking flow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(saveErr),
		)
		return nil, saveErr
	}
	uc.recordAttempt(ctx, session, constvars.BookingAttemptKindCheck, payload.DoctorID, payload.Date, payload.Time, "", err)

	if !available {
		uc.Log.Info("bookingUsecase.CheckAvailability slot unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
			zap.Error(err),
		)
		return nil, err
	}

	endTime, _ := utils.ConsultationEnd(payload.Time)
	result := &responses.AvailabilityResult{
		DoctorID:  payload.DoctorID,
		Date:      payload.Date,
		Time:      payload.Time,
		EndTime:   endTime,
		Range:     utils.FormatSlotRange(payload.Time),
		Available: true,
		FlowState: string(flow.State),
	}

	uc.Log.Info("bookingUsecase.CheckAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
	)
	return result, nil
}

// checkSlot runs the local pre-check against the doctor's timings and known bookings, then asks
// the booking API. A slot outside the timings is still sent to the API, which decides.
func (uc *bookingUsecase) checkSlot(ctx context.Context, session *models.Session, payload *requests.BackendCheckAvailability) error {
	requestID := utils.GetRequestID(ctx)

	doctor, booked, err := uc.fetchDoctorAndBookedSlots(ctx, session.BackendToken, payload.DoctorID)
	if err != nil {
		return err
	}

	window := slot.AvailabilityWindow{FromTime: doctor.FromTime, ToTime: doctor.ToTime}
	verdict := slot.Evaluate(slot.NewSlot(payload.Date, payload.Time), window, toSlotBookings(booked))

	switch verdict.Reason {
	case slot.ReasonConflict:
		return exceptions.ErrSlotUnavailable(fmt.Errorf("%s %s overlaps booking at %s %s", payload.Date, payload.Time, verdict.Conflict.Date, verdict.Conflict.Time))
	case slot.ReasonInvalidRequest:
		return exceptions.ErrInvalidClock(nil, payload.Time)
	case slot.ReasonOutsideWindow:
		uc.Log.Warn("bookingUsecase.checkSlot requested time outside doctor timings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotTimeKey, payload.Time),
			zap.String("from_time", doctor.FromTime),
			zap.String("to_time", doctor.ToTime),
		)
	}

	_, err = uc.AppointmentBackendClient.CheckAvailability(ctx, session.BackendToken, payload)
	return err
}

func (uc *bookingUsecase) fetchDoctorAndBookedSlots(ctx context.Context, token, doctorID string) (*responses.Doctor, []responses.BookedSlot, error) {
	var (
		doctor *responses.Doctor
		booked []responses.BookedSlot
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		doctor, err = uc.DoctorBackendClient.GetDoctor(ctx, token, doctorID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		booked, err = uc.AppointmentBackendClient.GetBookedSlots(ctx, token, doctorID)
		return err
	})

	if err := p.Wait(); err != nil {
		uc.Log.Error("bookingUsecase.fetchDoctorAndBookedSlots error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	if doctor == nil {
		doctor = new(responses.Doctor)
	}
	return doctor, booked, nil
}

func (uc *bookingUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.BookAppointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, request.Date),
		zap.String(constvars.LoggingSlotTimeKey, request.Time),
	)

	date, hhmm, err := normalizeSlot(request.Date, request.Time)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyBookingLockFormat, request.DoctorID, date, hhmm)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotBeingBooked(fmt.Errorf("lock %s held", lockKey))
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("bookingUsecase.BookAppointment error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	// load only while holding the slot lock
	flow, err := uc.flows.load(ctx, session.SessionID, request.DoctorID)
	if err != nil {
		return nil, err
	}

	err = flow.BeginBooking(date, hhmm)
	if err != nil {
		uc.Log.Error("bookingUsecase.BookAppointment slot was not checked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.flows.save(ctx, session.SessionID, request.DoctorID, flow)
	if err != nil {
		return nil, err
	}

	appointment, bookErr := uc.book(ctx, session, request.DoctorID, date, hhmm, flow.IdempotencyKey)

	if resolveErr := flow.ResolveBooking(bookErr == nil); resolveErr != nil {
		return nil, resolveErr
	}
	if saveErr := uc.flows.save(ctx, session.SessionID, request.DoctorID, flow); saveErr != nil {
		uc.Log.Error("bookingUsecase.BookAppointment error saving booking flow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowStateKey, string(flow.State)),
			zap.Error(saveErr),
		)
	}
	uc.recordAttempt(ctx, session, constvars.BookingAttemptKindBook, request.DoctorID, date, hhmm, flow.IdempotencyKey, bookErr)

	if bookErr != nil {
		uc.Log.Error("bookingUsecase.BookAppointment booking rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, exceptions.KindOf(bookErr)),
			zap.Error(bookErr),
		)
		return nil, bookErr
	}

	endTime, _ := utils.ConsultationEnd(hhmm)
	event := &requests.AppointmentBookedEvent{
		EventType:      constvars.EventTypeAppointmentBooked,
		IdempotencyKey: flow.IdempotencyKey,
		DoctorID:       request.DoctorID,
		UserID:         session.UserID,
		Date:           date,
		Time:           hhmm,
		EndTime:        endTime,
		OccurredAt:     uc.now().UTC(),
	}
	if publishErr := uc.EventPublisher.PublishAppointmentBooked(ctx, event); publishErr != nil {
		uc.Log.Error("bookingUsecase.BookAppointment error publishing appointment booked event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(publishErr),
		)
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventTypeAppointmentBooked, requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingSlotDateKey, date),
		zap.String(constvars.LoggingSlotTimeKey, hhmm),
	)

	return &responses.BookAppointment{
		DoctorID:       request.DoctorID,
		Date:           date,
		Time:           hhmm,
		Range:          utils.FormatSlotRange(hhmm),
		FlowState:      string(flow.State),
		RedirectTo:     session.AppointmentsRedirect(),
		IdempotencyKey: flow.IdempotencyKey,
		Appointment:    appointment,
	}, nil
}

func (uc *bookingUsecase) book(ctx context.Context, session *models.Session, doctorID, date, hhmm, idempotencyKey string) (*responses.Appointment, error) {
	doctor, err := uc.DoctorBackendClient.GetDoctor(ctx, session.BackendToken, doctorID)
	if err != nil {
		return nil, err
	}

	payload, err := BuildBookingPayload(doctorID, session.UserID, date, hhmm, doctor, session.Snapshot())
	if err != nil {
		return nil, err
	}

	appointment, _, err := uc.AppointmentBackendClient.BookAppointment(ctx, session.BackendToken, idempotencyKey, payload)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetBookedSlots lists a doctor's bookings with their display ranges, earliest first.
// Entries the booking API returns with an unreadable date or time are left out.
func (uc *bookingUsecase) GetBookedSlots(ctx context.Context, session *models.Session, doctorID string) ([]responses.BookedSlotDisplay, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetBookedSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	booked, err := uc.AppointmentBackendClient.GetBookedSlots(ctx, session.BackendToken, doctorID)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetBookedSlots error calling booking API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	displays := make([]responses.BookedSlotDisplay, 0, len(booked))
	for _, b := range booked {
		date, dateErr := utils.ParseCalendarDate(b.Date)
		hhmm, timeErr := utils.ParseClock(b.Time)
		if dateErr != nil || timeErr != nil {
			continue
		}
		endTime, _ := utils.ConsultationEnd(hhmm)
		displays = append(displays, responses.BookedSlotDisplay{
			Date:        date,
			DisplayDate: utils.FormatDisplayDate(date),
			Time:        hhmm,
			EndTime:     endTime,
			Range:       utils.FormatSlotRange(hhmm),
			Status:      b.Status,
		})
	}

	sort.SliceStable(displays, func(i, j int) bool {
		if displays[i].Date != displays[j].Date {
			return displays[i].Date < displays[j].Date
		}
		return displays[i].Time < displays[j].Time
	})

	uc.Log.Info("bookingUsecase.GetBookedSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookedCountKey, len(displays)),
	)
	return displays, nil
}

// recordAttempt audits a check or booking call. Audit failures are logged only.
func (uc *bookingUsecase) recordAttempt(ctx context.Context, session *models.Session, kind, doctorID, date, hhmm, idempotencyKey string, err error) {
	attempt := &models.BookingAttempt{
		Kind:           kind,
		RequestID:      utils.GetRequestID(ctx),
		UserID:         session.UserID,
		DoctorID:       doctorID,
		Date:           date,
		Time:           hhmm,
		IdempotencyKey: idempotencyKey,
		Outcome:        attemptOutcome(kind, err),
	}
	if err != nil {
		attempt.ErrorKind = exceptions.KindOf(err)
		attempt.Message = err.Error()
	}

	if insertErr := uc.BookingAttemptRepository.Insert(ctx, attempt); insertErr != nil {
		uc.Log.Error("bookingUsecase.recordAttempt error inserting booking attempt",
			zap.String(constvars.LoggingRequestIDKey, attempt.RequestID),
			zap.Error(insertErr),
		)
	}
}

func attemptOutcome(kind string, err error) string {
	switch {
	case err == nil && kind == constvars.BookingAttemptKindBook:
		return constvars.BookingOutcomeBooked
	case err == nil:
		return constvars.BookingOutcomeAvailable
	case exceptions.KindOf(err) == constvars.ErrorKindAvailabilityConflict:
		return constvars.BookingOutcomeUnavailable
	default:
		return constvars.BookingOutcomeFailed
	}
}

func toSlotBookings(booked []responses.BookedSlot) []slot.BookedSlot {
	slots := make([]slot.BookedSlot, 0, len(booked))
	for _, b := range booked {
		slots = append(slots, slot.BookedSlot{Date: b.Date, Time: b.Time, Status: b.Status})
	}
	return slots
}
