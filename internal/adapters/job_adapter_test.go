package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Yash-4120/applyflow/internal/models"
)

func sampleJob() models.Job {
	now := time.Now()
	return models.Job{
		ID:              "task-1",
		Title:           "Software Engineer",
		CompanyName:     "Google",
		ColumnID:        "col-2",
		CompanyIconURL:  "https://cdn.brandfetch.io/google.com?c=1idy7WQ5YtpRvbd1DQy",
		ApplicationLink: "https://careers.google.com/jobs/1",
		Description:     "Develop and maintain web applications.",
		CoverLetterID:   "cl-123",
		ResumeID:        "res-456",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestToBoardItemProjection(t *testing.T) {
	job := sampleJob()
	item := ToBoardItem(job)

	assert.Equal(t, job.ID, item.ID)
	assert.Equal(t, job.Title, item.Name, "board card label is the job title")
	assert.Equal(t, job.ColumnID, item.Column, "board membership is the job column")
	assert.Equal(t, job.Title, item.Title)
	assert.Equal(t, job.CompanyName, item.CompanyName)
	assert.Equal(t, job.CompanyIconURL, item.CompanyIconURL)
	assert.Equal(t, job.ApplicationLink, item.ApplicationLink)
	assert.Equal(t, job.Description, item.Description)
	assert.Equal(t, job.CreatedAt, item.CreatedAt)
	assert.Equal(t, job.UpdatedAt, item.UpdatedAt)
}

func TestRoundTripReproducesJob(t *testing.T) {
	job := sampleJob()

	back := ToJobPatch(ToBoardItem(job), &job)
	assert.Equal(t, job, back, "toJobPatch(toDisplayItem(j), j) must reproduce j")
}

func TestToJobPatchAppliesBoardChanges(t *testing.T) {
	job := sampleJob()
	item := ToBoardItem(job)
	item.Column = "col-4"
	item.Title = "Senior Software Engineer"

	patched := ToJobPatch(item, &job)
	assert.Equal(t, "col-4", patched.ColumnID)
	assert.Equal(t, "Senior Software Engineer", patched.Title)
	assert.Equal(t, job.CoverLetterID, patched.CoverLetterID, "fields the board does not carry survive")
	assert.Equal(t, job.ResumeID, patched.ResumeID)
	assert.Equal(t, job.ID, patched.ID)
}

func TestToJobPatchWithoutOriginal(t *testing.T) {
	item := ToBoardItem(sampleJob())

	patched := ToJobPatch(item, nil)
	assert.Equal(t, item.ID, patched.ID)
	assert.Equal(t, item.Column, patched.ColumnID)
	assert.Empty(t, patched.CoverLetterID, "no original to seed hidden fields from")
}
