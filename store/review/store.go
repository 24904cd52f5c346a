package review

import (
	"context"

	"medicare/models"
	"medicare/services/notification"
	"medicare/services/review"
	"medicare/store/resource"

	"go.uber.org/zap"
)

var messages = resource.Messages{
	FetchFailed:  "Failed to fetch reviews",
	Created:      "Review created successfully",
	CreateFailed: "Failed to create review",
	Updated:      "Review updated successfully",
	UpdateFailed: "Failed to update review",
	Deleted:      "Review deleted successfully",
	DeleteFailed: "Failed to delete review",
}

// Store caches the reviews of one doctor. The one-review-per-doctor rule is
// enforced by the backend and surfaces as a create failure.
type Store struct {
	*resource.Store[models.Review]
	svc review.ReviewService
}

func New(svc review.ReviewService, notifier notification.Notifier, logger *zap.Logger) *Store {
	return &Store{
		Store: resource.New[models.Review](resource.Config{
			Name: "reviews",
			Behavior: resource.Behavior{
				SetCurrentOnCreate:   true,
				SetCurrentOnUpdate:   true,
				ClearCurrentOnDelete: true,
			},
			Messages: messages,
			Notifier: notifier,
			Logger:   logger,
		}),
		svc: svc,
	}
}

func (s *Store) FetchDoctorReviews(ctx context.Context, doctorID string) models.Result[[]models.Review] {
	return s.Fetch(ctx, func(ctx context.Context) models.Result[[]models.Review] {
		return s.svc.GetDoctorReviews(ctx, doctorID)
	})
}

func (s *Store) CreateReview(ctx context.Context, req models.ReviewRequest) models.Result[models.Review] {
	return s.Create(ctx, func(ctx context.Context) models.Result[models.Review] {
		return s.svc.CreateReview(ctx, req)
	})
}

func (s *Store) UpdateReview(ctx context.Context, reviewID string, req models.ReviewRequest) models.Result[models.Review] {
	return s.Update(ctx, func(ctx context.Context) models.Result[models.Review] {
		return s.svc.UpdateReview(ctx, reviewID, req)
	})
}

func (s *Store) DeleteReview(ctx context.Context, reviewID string) models.Result[struct{}] {
	return s.Remove(ctx, reviewID, func(ctx context.Context) models.Result[struct{}] {
		return s.svc.DeleteReview(ctx, reviewID)
	})
}
