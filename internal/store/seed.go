package store

import (
	"time"

	"github.com/Yash-4120/applyflow/internal/models"
)

// DefaultColumns returns the four built-in board lists.
func DefaultColumns() []models.Column {
	return []models.Column{
		{ID: "col-1", Name: "WISHLIST"},
		{ID: "col-2", Name: "APPLIED"},
		{ID: "col-3", Name: "INTERVIEW"},
		{ID: "col-4", Name: "REJECTED"},
	}
}

// SampleJobs returns the development seed data.
func SampleJobs() []models.Job {
	now := time.Now()
	return []models.Job{
		{
			ID:              "task-1",
			Title:           "Software Engineer",
			CompanyName:     "Google",
			ColumnID:        "col-1",
			CompanyIconURL:  "https://cdn.brandfetch.io/google.com?c=1idy7WQ5YtpRvbd1DQy",
			Description:     "Develop and maintain web applications.",
			ApplicationLink: "https://careers.google.com/jobs/results/123456-software-engineer/",
			CoverLetterID:   "cl-123",
			ResumeID:        "res-456",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "task-2",
			Title:           "UX/UI Designer",
			CompanyName:     "Apple",
			ColumnID:        "col-2",
			CompanyIconURL:  "https://cdn.brandfetch.io/apple.com?c=1idy7WQ5YtpRvbd1DQy",
			Description:     "Design product flows and interface components.",
			ApplicationLink: "https://jobs.apple.com/en-us/details/200554321/ux-ui-designer",
			CoverLetterID:   "cl-123",
			ResumeID:        "res-456",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "task-20",
			Title:           "Platform Engineer",
			CompanyName:     "Shopify",
			ColumnID:        "col-1",
			CompanyIconURL:  "https://cdn.brandfetch.io/shopify.com?c=1idy7WQ5YtpRvbd1DQy",
			Description:     "Build and operate internal platform tooling.",
			ApplicationLink: "https://www.shopify.com/careers/platform-engineer",
			CoverLetterID:   "cl-123",
			ResumeID:        "res-456",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}
