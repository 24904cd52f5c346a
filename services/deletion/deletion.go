package deletion

import (
	"context"
	"net/url"

	"medicare/httpclient"
	"medicare/models"
)

func (s *DefaultDeletionRequestService) CreateDeletionRequest(ctx context.Context, reason string) models.Result[models.DeletionRequest] {
	body := map[string]string{"reason": reason}
	return httpclient.Decode[models.DeletionRequest](s.API.Post(ctx, "/deletion-requests", body, true))
}

// GetDeletionRequestStatus returns the caller's pending request, or nil data
// when there is none.
func (s *DefaultDeletionRequestService) GetDeletionRequestStatus(ctx context.Context) models.Result[*models.DeletionRequest] {
	return httpclient.Decode[*models.DeletionRequest](s.API.Get(ctx, "/deletion-requests/status", true))
}

func (s *DefaultDeletionRequestService) GetAllDeletionRequests(ctx context.Context) models.Result[[]models.DeletionRequest] {
	return httpclient.Decode[[]models.DeletionRequest](s.API.Get(ctx, "/deletion-requests", true))
}

func (s *DefaultDeletionRequestService) ProcessDeletionRequest(ctx context.Context, requestID string, decision models.DeletionDecision) models.Result[models.DeletionRequest] {
	return httpclient.Decode[models.DeletionRequest](s.API.Put(ctx, "/deletion-requests/"+url.PathEscape(requestID), decision, true))
}
