package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CheckAvailability(ctx context.Context, session *models.Session, request *requests.CheckAvailability) (*responses.AvailabilityResult, error)
	BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.BookAppointment, error)
	GetBookedSlots(ctx context.Context, session *models.Session, doctorID string) ([]responses.BookedSlotDisplay, error)
}

type AppointmentUsecase interface {
	GetAppointments(ctx context.Context, session *models.Session, request *requests.GetAppointments) ([]responses.Appointment, error)
}
