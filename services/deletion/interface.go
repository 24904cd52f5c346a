package deletion

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

// DeletionRequestService manages account deletion requests. Create and
// GetStatus act on the caller's own account; GetAll and Process are admin only.
type DeletionRequestService interface {
	CreateDeletionRequest(ctx context.Context, reason string) models.Result[models.DeletionRequest]
	GetDeletionRequestStatus(ctx context.Context) models.Result[*models.DeletionRequest]
	GetAllDeletionRequests(ctx context.Context) models.Result[[]models.DeletionRequest]
	ProcessDeletionRequest(ctx context.Context, requestID string, decision models.DeletionDecision) models.Result[models.DeletionRequest]
}

// DefaultDeletionRequestService is the production implementation.
type DefaultDeletionRequestService struct {
	API httpclient.API
}

func NewDeletionRequestService(api httpclient.API) *DefaultDeletionRequestService {
	return &DefaultDeletionRequestService{API: api}
}
