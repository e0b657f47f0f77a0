package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/integrations"
	"github.com/Yash-4120/applyflow/internal/models"
)

// JobStore holds the authoritative list of job applications in memory.
// Every method takes the lock for the whole mutation, so individual
// operations are atomic; there is no cross-operation versioning, a late
// update simply wins.
type JobStore struct {
	mu   sync.RWMutex
	jobs []models.Job
	seed []models.Job
}

// NewJobStore builds a store pre-populated with the given records.
func NewJobStore(seed ...models.Job) *JobStore {
	s := &JobStore{
		jobs: make([]models.Job, len(seed)),
		seed: seed,
	}
	copy(s.jobs, seed)
	return s
}

// Create validates required fields, assigns a fresh id and timestamps, and
// appends the record. ColumnID defaults to col-1 and the icon URL falls back
// to the generated brand image when not supplied.
func (s *JobStore) Create(req dtos.CreateJobRequest) (models.Job, error) {
	if req.Title == "" || req.CompanyName == "" {
		return models.Job{}, &ValidationError{Message: "Title and company name are required fields"}
	}

	columnID := req.ColumnID
	if columnID == "" {
		columnID = "col-1"
	}
	iconURL := req.CompanyIconURL
	if iconURL == "" {
		iconURL = integrations.FallbackIconURL(req.CompanyName)
	}

	now := time.Now()
	job := models.Job{
		ID:              "job-" + uuid.NewString(),
		Title:           req.Title,
		CompanyName:     req.CompanyName,
		ColumnID:        columnID,
		CompanyIconURL:  iconURL,
		ApplicationLink: req.ApplicationLink,
		Description:     req.Description,
		CoverLetterID:   req.CoverLetterID,
		ResumeID:        req.ResumeID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	return job, nil
}

// GetByID returns a copy of the record with the given id.
func (s *JobStore) GetByID(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, &NotFoundError{ID: id}
}

// List returns a copy of every record.
func (s *JobStore) List() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// ListByColumn returns the records currently in the given column.
func (s *JobStore) ListByColumn(columnID string) []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0)
	for _, job := range s.jobs {
		if job.ColumnID == columnID {
			out = append(out, job)
		}
	}
	return out
}

// Search matches the query case-insensitively against title and company
// name. An empty or whitespace query returns everything.
func (s *JobStore) Search(query string) []models.Job {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0)
	for _, job := range s.jobs {
		if strings.Contains(strings.ToLower(job.Title), term) ||
			strings.Contains(strings.ToLower(job.CompanyName), term) {
			out = append(out, job)
		}
	}
	return out
}

// Update merges the non-nil fields of patch into the record and refreshes
// UpdatedAt. The id can never change.
func (s *JobStore) Update(id string, patch dtos.UpdateJobRequest) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID != id {
			continue
		}
		job := &s.jobs[i]
		if patch.Title != nil {
			job.Title = *patch.Title
		}
		if patch.CompanyName != nil {
			job.CompanyName = *patch.CompanyName
		}
		if patch.ColumnID != nil {
			job.ColumnID = *patch.ColumnID
		}
		if patch.CompanyIconURL != nil {
			job.CompanyIconURL = *patch.CompanyIconURL
		}
		if patch.ApplicationLink != nil {
			job.ApplicationLink = *patch.ApplicationLink
		}
		if patch.Description != nil {
			job.Description = *patch.Description
		}
		if patch.CoverLetterID != nil {
			job.CoverLetterID = *patch.CoverLetterID
		}
		if patch.ResumeID != nil {
			job.ResumeID = *patch.ResumeID
		}
		job.UpdatedAt = time.Now()
		return *job, nil
	}
	return models.Job{}, &NotFoundError{ID: id}
}

// Delete removes the record with the given id.
func (s *JobStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{ID: id}
}

// Count returns the number of stored records.
func (s *JobStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// Reset restores the store to its seed data. Test hook only.
func (s *JobStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = make([]models.Job, len(s.seed))
	copy(s.jobs, s.seed)
}
