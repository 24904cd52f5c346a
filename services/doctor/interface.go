package doctor

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type DoctorService interface {
	GetAllDoctors(ctx context.Context, query string) models.Result[[]models.Doctor]
	GetDoctorByID(ctx context.Context, doctorID string) models.Result[models.Doctor]
	UpdateDoctor(ctx context.Context, doctorID string, fields map[string]any, photo *models.UploadFile) models.Result[models.Doctor]
	GetTopRatedDoctors(ctx context.Context, limit int) models.Result[[]models.Doctor]
	DeleteDoctor(ctx context.Context, doctorID string) models.Result[struct{}]
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	API httpclient.API
}

func NewDoctorService(api httpclient.API) *DefaultDoctorService {
	return &DefaultDoctorService{API: api}
}
