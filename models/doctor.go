package models

// TimeSlot is a doctor's weekly availability window.
type TimeSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Doctor is the public doctor profile.
type Doctor struct {
	ID                string     `json:"_id"`
	Name              string     `json:"name"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Photo             string     `json:"photo,omitempty"`
	Gender            string     `json:"gender,omitempty"`
	Specialization    string     `json:"specialization,omitempty"`
	TicketPrice       float64    `json:"ticketPrice,omitempty"`
	Bio               string     `json:"bio,omitempty"`
	About             string     `json:"about,omitempty"`
	YearsOfExperience int        `json:"yearsOfExperience,omitempty"`
	Qualifications    []any      `json:"qualifications,omitempty"`
	Experiences       []any      `json:"experiences,omitempty"`
	TimeSlots         []TimeSlot `json:"timeSlots,omitempty"`
	AverageRating     float64    `json:"averageRating,omitempty"`
	TotalRating       int        `json:"totalRating,omitempty"`
	IsApproved        string     `json:"isApproved,omitempty"`
}

func (d Doctor) GetID() string { return d.ID }
