package models

import (
	"time"
)

// Job is a single tracked job application. ID is assigned by the store and
// never changes afterwards.
type Job struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title           string `json:"title"`
	CompanyName     string `json:"companyName"`
	CompanyIconURL  string `json:"companyIconUrl"`
	ApplicationLink string `json:"applicationLink"`
	Description     string `json:"description"`

	// Foreign key into the column set
	ColumnID string `json:"columnId"`

	// Optional document references
	CoverLetterID string `json:"coverLetterId,omitempty"`
	ResumeID      string `json:"resumeId,omitempty"`
}

// Column is one list on the board (Wishlist, Applied, ...).
type Column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
