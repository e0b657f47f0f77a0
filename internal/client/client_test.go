package client

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/handlers"
	"github.com/Yash-4120/applyflow/internal/services"
	"github.com/Yash-4120/applyflow/internal/store"
)

func setupServer(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jobService := services.NewJobService(
		store.NewJobStore(store.SampleJobs()...),
		store.NewColumnStore(store.DefaultColumns()...),
	)
	h := handlers.NewJobHandler(jobService)

	router := gin.New()
	router.GET("/applications", h.ListJobs)
	router.POST("/applications", h.CreateJob)
	router.GET("/applications/:id", h.GetJob)
	router.PUT("/applications/:id", h.UpdateJob)
	router.DELETE("/applications/:id", h.DeleteJob)
	router.GET("/columns", h.ListColumns)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientGetAllJobs(t *testing.T) {
	api := setupServer(t)

	jobs, err := api.GetAllJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestClientFilterAndSearch(t *testing.T) {
	api := setupServer(t)
	ctx := context.Background()

	byColumn, err := api.GetJobsByColumn(ctx, "col-1")
	require.NoError(t, err)
	assert.Len(t, byColumn, 2)

	matches, err := api.SearchJobs(ctx, "goog")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Google", matches[0].CompanyName)
}

func TestClientCreateAndFetch(t *testing.T) {
	api := setupServer(t)
	ctx := context.Background()

	created, err := api.CreateJob(ctx, dtos.CreateJobRequest{Title: "SWE", CompanyName: "Acme"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := api.GetJobByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "SWE", got.Title)
}

func TestClientSurfacesServerErrors(t *testing.T) {
	api := setupServer(t)

	_, err := api.CreateJob(context.Background(), dtos.CreateJobRequest{CompanyName: "Acme"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Title and company name are required fields", apiErr.Message)
	assert.Equal(t, apiErr.Message, apiErr.Error())
}

func TestClientNotFound(t *testing.T) {
	api := setupServer(t)

	_, err := api.GetJobByID(context.Background(), "ghost")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestClientMoveJob(t *testing.T) {
	api := setupServer(t)

	moved, err := api.MoveJob(context.Background(), "task-1", "col-3")
	require.NoError(t, err)
	assert.Equal(t, "task-1", moved.ID)
	assert.Equal(t, "col-3", moved.ColumnID)
}

func TestClientDeleteJob(t *testing.T) {
	api := setupServer(t)
	ctx := context.Background()

	deletedID, err := api.DeleteJob(ctx, "task-2")
	require.NoError(t, err)
	assert.Equal(t, "task-2", deletedID)

	_, err = api.GetJobByID(ctx, "task-2")
	assert.Error(t, err)
}

func TestClientGetColumns(t *testing.T) {
	api := setupServer(t)

	columns, err := api.GetColumns(context.Background())
	require.NoError(t, err)
	require.Len(t, columns, 4)
	assert.Equal(t, "col-1", columns[0].ID)
}
