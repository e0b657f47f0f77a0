package board

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Yash-4120/applyflow/internal/adapters"
	"github.com/Yash-4120/applyflow/internal/client"
	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/models"
)

// State is the controller lifecycle: Ready is re-entered after every
// mutation.
type State int

const (
	Idle State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// ErrAllFieldsRequired is returned when a board-side create is missing any
// display field. The board form is stricter than the server, which only
// requires title and company.
var ErrAllFieldsRequired = errors.New("All fields are required")

// Controller keeps a transient copy of the board (columns plus jobs)
// convergent with the server. Local state may drift until the next Load;
// there is no reconciliation beyond last local write wins.
type Controller struct {
	api *client.Client

	// PersistMoves pushes column reassignments through the update endpoint
	// during ApplyBoardChange. Off, a drag is a pure local preview.
	PersistMoves bool

	mu      sync.Mutex
	state   State
	jobs    []models.Job
	columns []models.Column
}

func NewController(api *client.Client) *Controller {
	return &Controller{
		api:          api,
		PersistMoves: true,
		state:        Idle,
	}
}

func (ctl *Controller) setState(s State) {
	ctl.mu.Lock()
	ctl.state = s
	ctl.mu.Unlock()
}

func (ctl *Controller) State() State {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.state
}

// Jobs returns a snapshot of the local job list.
func (ctl *Controller) Jobs() []models.Job {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	out := make([]models.Job, len(ctl.jobs))
	copy(out, ctl.jobs)
	return out
}

// Columns returns a snapshot of the local column list.
func (ctl *Controller) Columns() []models.Column {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	out := make([]models.Column, len(ctl.columns))
	copy(out, ctl.columns)
	return out
}

// Items projects the local jobs into board display items.
func (ctl *Controller) Items() []adapters.BoardItem {
	jobs := ctl.Jobs()
	items := make([]adapters.BoardItem, len(jobs))
	for i, job := range jobs {
		items[i] = adapters.ToBoardItem(job)
	}
	return items
}

// Load fetches columns and jobs and enters Ready. A failed load falls back
// to Idle with local state untouched.
func (ctl *Controller) Load(ctx context.Context) error {
	ctl.mu.Lock()
	ctl.state = Loading
	ctl.mu.Unlock()

	columns, err := ctl.api.GetColumns(ctx)
	if err != nil {
		ctl.setState(Idle)
		return fmt.Errorf("failed to load columns: %w", err)
	}
	jobs, err := ctl.api.GetAllJobs(ctx)
	if err != nil {
		ctl.setState(Idle)
		return fmt.Errorf("failed to load jobs: %w", err)
	}

	ctl.mu.Lock()
	ctl.columns = columns
	ctl.jobs = jobs
	ctl.state = Ready
	ctl.mu.Unlock()

	zap.L().Info("board loaded", zap.Int("columns", len(columns)), zap.Int("jobs", len(jobs)))
	return nil
}

// CreateJob validates every display field, creates the job in the target
// column, and appends the server's record to local state. Nothing is added
// locally before the call succeeds, so a failure needs no rollback.
func (ctl *Controller) CreateJob(ctx context.Context, draft models.Job, targetColumn string) (models.Job, error) {
	if draft.Title == "" || draft.CompanyName == "" || draft.CompanyIconURL == "" ||
		draft.Description == "" || draft.ApplicationLink == "" ||
		draft.ResumeID == "" || draft.CoverLetterID == "" {
		return models.Job{}, ErrAllFieldsRequired
	}

	created, err := ctl.api.CreateJob(ctx, dtos.CreateJobRequest{
		Title:           draft.Title,
		CompanyName:     draft.CompanyName,
		ColumnID:        targetColumn,
		CompanyIconURL:  draft.CompanyIconURL,
		ApplicationLink: draft.ApplicationLink,
		Description:     draft.Description,
		CoverLetterID:   draft.CoverLetterID,
		ResumeID:        draft.ResumeID,
	})
	if err != nil {
		zap.L().Error("failed to create job", zap.Error(err))
		return models.Job{}, err
	}

	ctl.mu.Lock()
	ctl.jobs = append(ctl.jobs, created)
	ctl.state = Ready
	ctl.mu.Unlock()

	return created, nil
}

// CreateColumn adds a list locally with a timestamp-derived id. It is never
// persisted to the backend; the server learns about it only if a column
// endpoint call is made separately.
func (ctl *Controller) CreateColumn(name string) (models.Column, error) {
	if name == "" {
		return models.Column{}, errors.New("column name is required")
	}

	column := models.Column{
		ID:   fmt.Sprintf("col-%d", time.Now().UnixMilli()),
		Name: name,
	}

	ctl.mu.Lock()
	ctl.columns = append(ctl.columns, column)
	ctl.mu.Unlock()

	return column, nil
}

// DeleteJob removes the job on the server first and only then from local
// state; on failure local state is untouched.
func (ctl *Controller) DeleteJob(ctx context.Context, id string) error {
	deletedID, err := ctl.api.DeleteJob(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete job", zap.String("id", id), zap.Error(err))
		return err
	}

	ctl.mu.Lock()
	for i := range ctl.jobs {
		if ctl.jobs[i].ID == deletedID {
			ctl.jobs = append(ctl.jobs[:i], ctl.jobs[i+1:]...)
			break
		}
	}
	ctl.state = Ready
	ctl.mu.Unlock()

	return nil
}

// ApplyBoardChange takes the full item set the board component produced
// after a drag or reorder, converts every item back to a job through the
// adapter, and replaces the local job list wholesale. With PersistMoves set,
// items whose column changed are pushed through the update endpoint so the
// server does not drift from the board.
func (ctl *Controller) ApplyBoardChange(ctx context.Context, items []adapters.BoardItem) error {
	ctl.mu.Lock()
	previous := make(map[string]models.Job, len(ctl.jobs))
	for _, job := range ctl.jobs {
		previous[job.ID] = job
	}

	updated := make([]models.Job, len(items))
	var moved []adapters.BoardItem
	for i, item := range items {
		var original *models.Job
		if prev, ok := previous[item.ID]; ok {
			original = &prev
			if prev.ColumnID != item.Column {
				moved = append(moved, item)
			}
		}
		updated[i] = adapters.ToJobPatch(item, original)
	}
	ctl.jobs = updated
	ctl.state = Ready
	ctl.mu.Unlock()

	if !ctl.PersistMoves {
		return nil
	}

	var errs []error
	for _, item := range moved {
		if _, err := ctl.api.MoveJob(ctx, item.ID, item.Column); err != nil {
			zap.L().Error("failed to persist column move",
				zap.String("id", item.ID),
				zap.String("column", item.Column),
				zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
