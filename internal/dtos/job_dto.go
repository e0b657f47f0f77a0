package dtos

import (
	"github.com/Yash-4120/applyflow/internal/models"
)

type CreateJobRequest struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`

	// Optional Fields
	ColumnID        string `json:"columnId"`
	CompanyIconURL  string `json:"companyIconUrl"`
	ApplicationLink string `json:"applicationLink"`
	Description     string `json:"description"`
	CoverLetterID   string `json:"coverLetterId"`
	ResumeID        string `json:"resumeId"`
}

// UpdateJobRequest carries a partial update. Pointer fields distinguish
// "not sent" from "sent as empty", which the validation rules care about.
type UpdateJobRequest struct {
	Title           *string `json:"title"`
	CompanyName     *string `json:"companyName"`
	ColumnID        *string `json:"columnId"`
	CompanyIconURL  *string `json:"companyIconUrl"`
	ApplicationLink *string `json:"applicationLink"`
	Description     *string `json:"description"`
	CoverLetterID   *string `json:"coverLetterId"`
	ResumeID        *string `json:"resumeId"`
}

type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type APIError struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

type JobsPayload struct {
	Jobs  []models.Job `json:"jobs"`
	Total int          `json:"total"`
}

type JobPayload struct {
	Job models.Job `json:"job"`
}

type DeletePayload struct {
	DeletedID string `json:"deletedId"`
}
