package review

import (
	"context"
	"net/url"

	"medicare/httpclient"
	"medicare/models"
)

// CreateReview posts a review. The backend rejects a second review by the same
// user for the same doctor; that failure is passed through unchanged.
func (s *DefaultReviewService) CreateReview(ctx context.Context, req models.ReviewRequest) models.Result[models.Review] {
	return httpclient.Decode[models.Review](s.API.Post(ctx, "/reviews", req, true))
}

func (s *DefaultReviewService) GetDoctorReviews(ctx context.Context, doctorID string) models.Result[[]models.Review] {
	return httpclient.Decode[[]models.Review](s.API.Get(ctx, "/doctors/"+url.PathEscape(doctorID)+"/reviews", false))
}

func (s *DefaultReviewService) UpdateReview(ctx context.Context, reviewID string, req models.ReviewRequest) models.Result[models.Review] {
	return httpclient.Decode[models.Review](s.API.Put(ctx, "/reviews/"+url.PathEscape(reviewID), req, true))
}

func (s *DefaultReviewService) DeleteReview(ctx context.Context, reviewID string) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Delete(ctx, "/reviews/"+url.PathEscape(reviewID), true))
}
