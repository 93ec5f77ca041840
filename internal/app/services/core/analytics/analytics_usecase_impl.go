package analytics

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const unknownSpecialization = "Unknown"

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

type analyticsUsecase struct {
	UserBackendClient        contracts.UserBackendClient
	DoctorBackendClient      contracts.DoctorBackendClient
	BookingAttemptRepository contracts.BookingAttemptRepository
	RedisRepository          contracts.RedisRepository
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

func NewAnalyticsUsecase(
	userBackendClient contracts.UserBackendClient,
	doctorBackendClient contracts.DoctorBackendClient,
	bookingAttemptRepository contracts.BookingAttemptRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		analyticsUsecaseInstance = &analyticsUsecase{
			UserBackendClient:        userBackendClient,
			DoctorBackendClient:      doctorBackendClient,
			BookingAttemptRepository: bookingAttemptRepository,
			RedisRepository:          redisRepository,
			InternalConfig:           internalConfig,
			Log:                      logger,
		}
	})
	return analyticsUsecaseInstance
}

func (uc *analyticsUsecase) cacheTTL() time.Duration {
	if seconds := uc.InternalConfig.Booking.AnalyticsCacheTTLSeconds; seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return constvars.AnalyticsCacheExpiration
}

// GetDashboard builds the admin dashboard from users, doctors and recorded booking attempts.
// The result is cached for a short while.
func (uc *analyticsUsecase) GetDashboard(ctx context.Context, session *models.Session) (*responses.DashboardAnalytics, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("analyticsUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsAdmin {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role())
	}

	cached := new(responses.DashboardAnalytics)
	found, err := uc.RedisRepository.GetInto(ctx, constvars.RedisKeyAnalyticsDashboard, cached)
	if err != nil {
		uc.Log.Error("analyticsUsecase.GetDashboard error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if found {
		uc.Log.Info("analyticsUsecase.GetDashboard served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return cached, nil
	}

	var (
		users    []responses.User
		doctors  []responses.Doctor
		outcomes map[string]int
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		users, err = uc.UserBackendClient.GetUsers(ctx, session.BackendToken)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		doctors, err = uc.DoctorBackendClient.GetDoctors(ctx, session.BackendToken)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		outcomes, err = uc.BookingAttemptRepository.CountByOutcome(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		uc.Log.Error("analyticsUsecase.GetDashboard error collecting data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	dashboard := BuildDashboard(users, doctors, outcomes)

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyAnalyticsDashboard, dashboard, uc.cacheTTL())
	if err != nil {
		uc.Log.Error("analyticsUsecase.GetDashboard error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("analyticsUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return dashboard, nil
}

// BuildDashboard counts every user once under its highest role: admin, then doctor, then user.
func BuildDashboard(users []responses.User, doctors []responses.Doctor, outcomes map[string]int) *responses.DashboardAnalytics {
	var admins, doctorUsers, regular int
	for _, user := range users {
		switch {
		case user.IsAdmin:
			admins++
		case user.IsDoctor:
			doctorUsers++
		default:
			regular++
		}
	}

	specializations := map[string]int{}
	for _, doctor := range doctors {
		specialization := strings.TrimSpace(doctor.Specialization)
		if specialization == "" {
			specialization = unknownSpecialization
		}
		specializations[specialization]++
	}

	outcomeCounts := []responses.NamedCount{
		{Name: constvars.BookingOutcomeAvailable, Value: outcomes[constvars.BookingOutcomeAvailable]},
		{Name: constvars.BookingOutcomeUnavailable, Value: outcomes[constvars.BookingOutcomeUnavailable]},
		{Name: constvars.BookingOutcomeBooked, Value: outcomes[constvars.BookingOutcomeBooked]},
		{Name: constvars.BookingOutcomeFailed, Value: outcomes[constvars.BookingOutcomeFailed]},
	}

	return &responses.DashboardAnalytics{
		TotalUsers:   len(users),
		TotalDoctors: len(doctors),
		UsersByRole: []responses.NamedCount{
			{Name: "Admins", Value: admins},
			{Name: "Doctors", Value: doctorUsers},
			{Name: "Users", Value: regular},
		},
		DoctorsBySpecialization:  sortedCounts(specializations),
		BookingAttemptsByOutcome: outcomeCounts,
	}
}

func sortedCounts(counts map[string]int) []responses.NamedCount {
	named := make([]responses.NamedCount, 0, len(counts))
	for name, value := range counts {
		named = append(named, responses.NamedCount{Name: name, Value: value})
	}
	sort.Slice(named, func(i, j int) bool {
		if named[i].Value != named[j].Value {
			return named[i].Value > named[j].Value
		}
		return named[i].Name < named[j].Name
	})
	return named
}
