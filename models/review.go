package models

import "time"

// Review is a patient's rating of a doctor. The backend allows one review per
// user per doctor.
type Review struct {
	ID         string     `json:"_id"`
	Doctor     Ref        `json:"doctor"`
	User       Ref        `json:"user"`
	ReviewText string     `json:"reviewText"`
	Rating     int        `json:"rating"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

func (r Review) GetID() string { return r.ID }

// ReviewRequest is used for both creating and editing a review.
type ReviewRequest struct {
	Doctor     string `json:"doctor,omitempty"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
}
