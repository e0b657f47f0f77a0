package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/models"
	"github.com/Yash-4120/applyflow/internal/store"
)

func newTestService(t *testing.T) *JobService {
	t.Helper()
	return NewJobService(
		store.NewJobStore(store.SampleJobs()...),
		store.NewColumnStore(store.DefaultColumns()...),
	)
}

func strptr(s string) *string {
	return &s
}

func TestListJobsFilterModes(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.ListJobs("", ""), 3)
	assert.Len(t, svc.ListJobs("col-1", ""), 2)
	assert.Len(t, svc.ListJobs("", "goog"), 1)
	// filters are mutually exclusive; column wins when both are sent
	assert.Len(t, svc.ListJobs("col-2", "goog"), 1)
}

func TestCreateJobRejectsUnknownColumn(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateJob(dtos.CreateJobRequest{
		Title:       "SWE",
		CompanyName: "Acme",
		ColumnID:    "col-99",
	})
	var ve *store.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid column. Must be one of: col-1, col-2, col-3, col-4", ve.Message)
}

func TestCreateJobAcceptsDynamicColumn(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddColumn(models.Column{ID: "col-99", Name: "OFFERS"}))

	job, err := svc.CreateJob(dtos.CreateJobRequest{
		Title:       "SWE",
		CompanyName: "Acme",
		ColumnID:    "col-99",
	})
	require.NoError(t, err)
	assert.Equal(t, "col-99", job.ColumnID)
}

func TestCreateJobDelegatesRequiredFieldCheck(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateJob(dtos.CreateJobRequest{CompanyName: "Acme"})
	var ve *store.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateJobValidationOrder(t *testing.T) {
	svc := newTestService(t)

	// Invalid column is checked before the empty-field rule.
	_, err := svc.UpdateJob("task-1", dtos.UpdateJobRequest{
		ColumnID: strptr("col-99"),
		Title:    strptr(""),
	})
	var ve *store.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "Invalid column")
}

func TestUpdateJobRejectsEmptyTitleOrCompany(t *testing.T) {
	svc := newTestService(t)

	for _, patch := range []dtos.UpdateJobRequest{
		{Title: strptr("")},
		{CompanyName: strptr("")},
	} {
		_, err := svc.UpdateJob("task-1", patch)
		var ve *store.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Name and company cannot be empty", ve.Message)
	}
}

func TestUpdateJobMovesColumn(t *testing.T) {
	svc := newTestService(t)

	job, err := svc.UpdateJob("task-1", dtos.UpdateJobRequest{ColumnID: strptr("col-3")})
	require.NoError(t, err)
	assert.Equal(t, "task-1", job.ID)
	assert.Equal(t, "col-3", job.ColumnID)
}

func TestUpdateJobNotFoundAfterValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateJob("does-not-exist", dtos.UpdateJobRequest{Title: strptr("New")})
	var nfe *store.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestDeleteJob(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.DeleteJob("task-1"))
	var nfe *store.NotFoundError
	err := svc.DeleteJob("task-1")
	require.ErrorAs(t, err, &nfe)
}
