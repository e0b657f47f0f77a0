package services

import (
	"strings"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/models"
	"github.com/Yash-4120/applyflow/internal/store"
)

// JobService sits between the HTTP surface and the stores: it owns the
// request-level validation rules and delegates storage to the injected
// stores.
type JobService struct {
	Jobs    *store.JobStore
	Columns *store.ColumnStore
}

func NewJobService(jobs *store.JobStore, columns *store.ColumnStore) *JobService {
	return &JobService{
		Jobs:    jobs,
		Columns: columns,
	}
}

// ListJobs returns jobs filtered by column, matched by search, or all of
// them. The two filters are mutually exclusive; column wins when both are
// set.
func (s *JobService) ListJobs(column, search string) []models.Job {
	switch {
	case column != "":
		return s.Jobs.ListByColumn(column)
	case search != "":
		return s.Jobs.Search(search)
	default:
		return s.Jobs.List()
	}
}

func (s *JobService) GetJob(id string) (models.Job, error) {
	return s.Jobs.GetByID(id)
}

// CreateJob validates the target column against the live column set, then
// lets the store enforce required fields and fill defaults.
func (s *JobService) CreateJob(req dtos.CreateJobRequest) (models.Job, error) {
	if req.ColumnID != "" && !s.Columns.Exists(req.ColumnID) {
		return models.Job{}, s.invalidColumnError()
	}
	return s.Jobs.Create(req)
}

// UpdateJob validates the patch, then merges it into the stored record.
func (s *JobService) UpdateJob(id string, patch dtos.UpdateJobRequest) (models.Job, error) {
	if patch.ColumnID != nil && !s.Columns.Exists(*patch.ColumnID) {
		return models.Job{}, s.invalidColumnError()
	}
	if (patch.Title != nil && *patch.Title == "") ||
		(patch.CompanyName != nil && *patch.CompanyName == "") {
		return models.Job{}, &store.ValidationError{Message: "Name and company cannot be empty"}
	}
	return s.Jobs.Update(id, patch)
}

func (s *JobService) DeleteJob(id string) error {
	return s.Jobs.Delete(id)
}

func (s *JobService) ListColumns() []models.Column {
	return s.Columns.List()
}

func (s *JobService) AddColumn(column models.Column) error {
	return s.Columns.Add(column)
}

func (s *JobService) invalidColumnError() error {
	return &store.ValidationError{
		Message: "Invalid column. Must be one of: " + strings.Join(s.Columns.IDs(), ", "),
	}
}
