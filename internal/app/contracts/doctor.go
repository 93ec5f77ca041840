package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	GetApprovedDoctors(ctx context.Context, session *models.Session) ([]responses.DoctorCard, error)
	GetDoctors(ctx context.Context, session *models.Session) ([]responses.DoctorCard, error)
	GetDoctor(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorCard, error)
	ApplyDoctor(ctx context.Context, session *models.Session, request *requests.ApplyDoctor) (*responses.DoctorCard, error)
	UpdateDoctorProfile(ctx context.Context, session *models.Session, request *requests.ApplyDoctor) (*responses.DoctorCard, error)
	UpdateDoctorStatus(ctx context.Context, session *models.Session, request *requests.UpdateDoctorStatus) (*responses.DoctorCard, error)
}
