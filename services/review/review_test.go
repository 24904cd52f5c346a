package review

import (
	"context"
	"testing"

	"medicare/httpclient/apitest"
	"medicare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorReviewsArePublic(t *testing.T) {
	api := apitest.New().On("GET", "/doctors/d1/reviews", apitest.OK([]models.Review{{ID: "r1", Rating: 5}}, ""))

	res := NewReviewService(api).GetDoctorReviews(context.Background(), "d1")
	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, 5, res.Data[0].Rating)
	assert.False(t, api.Last().AuthRequired)
}

func TestDuplicateReviewFailureIsPassedThrough(t *testing.T) {
	api := apitest.New().On("POST", "/reviews", apitest.Failure("You have already reviewed this doctor", 400))

	res := NewReviewService(api).CreateReview(context.Background(), models.ReviewRequest{Doctor: "d1", ReviewText: "ok", Rating: 4})
	assert.False(t, res.Success)
	assert.Equal(t, "You have already reviewed this doctor", res.Message)
}

func TestUpdateAndDeleteReview(t *testing.T) {
	api := apitest.New()
	api.Default = apitest.OK(nil, "")
	svc := NewReviewService(api)

	svc.UpdateReview(context.Background(), "r1", models.ReviewRequest{ReviewText: "better", Rating: 5})
	assert.Equal(t, "PUT", api.Last().Method)
	assert.Equal(t, "/reviews/r1", api.Last().Path)

	svc.DeleteReview(context.Background(), "r1")
	assert.Equal(t, "DELETE", api.Last().Method)
	assert.True(t, api.Last().AuthRequired)
}
