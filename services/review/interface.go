package review

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req models.ReviewRequest) models.Result[models.Review]
	GetDoctorReviews(ctx context.Context, doctorID string) models.Result[[]models.Review]
	UpdateReview(ctx context.Context, reviewID string, req models.ReviewRequest) models.Result[models.Review]
	DeleteReview(ctx context.Context, reviewID string) models.Result[struct{}]
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	API httpclient.API
}

func NewReviewService(api httpclient.API) *DefaultReviewService {
	return &DefaultReviewService{API: api}
}
