package adapters

import (
	"time"

	"github.com/Yash-4120/applyflow/internal/models"
)

// BoardItem is the shape the generic kanban component manipulates: a job
// projected with the board's own field names (Name for the card label,
// Column for list membership). It is derived on every render and never
// persisted.
type BoardItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Column string `json:"column"`

	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	CompanyIconURL  string    `json:"companyIconUrl"`
	ApplicationLink string    `json:"applicationLink"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToBoardItem projects a job onto the board item shape. No information the
// board needs is lost; Name and Column are copies of Title and ColumnID.
func ToBoardItem(job models.Job) BoardItem {
	return BoardItem{
		ID:              job.ID,
		Name:            job.Title,
		Column:          job.ColumnID,
		Title:           job.Title,
		CompanyName:     job.CompanyName,
		CompanyIconURL:  job.CompanyIconURL,
		ApplicationLink: job.ApplicationLink,
		Description:     job.Description,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// ToJobPatch reverses the projection after a board mutation. When original
// is supplied its fields seed the result, so fields the board does not carry
// (cover letter, resume) survive the round trip.
func ToJobPatch(item BoardItem, original *models.Job) models.Job {
	var job models.Job
	if original != nil {
		job = *original
	}
	job.ID = item.ID
	job.Title = item.Title
	job.ColumnID = item.Column
	job.CompanyName = item.CompanyName
	job.CompanyIconURL = item.CompanyIconURL
	job.ApplicationLink = item.ApplicationLink
	job.Description = item.Description
	return job
}
