package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/services"
)

// Dependency injection: handlers only talk to the job service.
type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		JobService: j,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is GET /applications, with optional ?column= or ?search=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	column := c.Query("column")
	search := c.Query("search")

	jobs := h.JobService.ListJobs(column, search)
	zap.L().Debug("jobs retrieved",
		zap.Int("count", len(jobs)),
		zap.String("column", column),
		zap.String("search", search))

	respondOK(c, http.StatusOK, dtos.JobsPayload{Jobs: jobs, Total: len(jobs)}, "Jobs retrieved successfully")
}

// GetJob is GET /applications/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "Job ID is required")
		return
	}

	job, err := h.JobService.GetJob(id)
	if err != nil {
		respondStoreError(c, err, "Failed to retrieve job")
		return
	}

	respondOK(c, http.StatusOK, dtos.JobPayload{Job: job}, "Job retrieved successfully")
}

// CreateJob is POST /applications.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.JobService.CreateJob(req)
	if err != nil {
		zap.L().Warn("job creation rejected", zap.Error(err))
		respondStoreError(c, err, "Failed to create job")
		return
	}

	zap.L().Info("job created", zap.String("id", job.ID), zap.String("company", job.CompanyName))
	respondOK(c, http.StatusCreated, dtos.JobPayload{Job: job}, "Job application created successfully")
}

// UpdateJob is PUT /applications/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "Job ID is required")
		return
	}

	var patch dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, errBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	job, err := h.JobService.UpdateJob(id, patch)
	if err != nil {
		respondStoreError(c, err, "Failed to update job")
		return
	}

	zap.L().Info("job updated", zap.String("id", job.ID), zap.String("column", job.ColumnID))
	respondOK(c, http.StatusOK, dtos.JobPayload{Job: job}, "Job application updated successfully")
}

// DeleteJob is DELETE /applications/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, errBadRequest, "Job ID is required")
		return
	}

	if err := h.JobService.DeleteJob(id); err != nil {
		respondStoreError(c, err, "Failed to delete job")
		return
	}

	zap.L().Info("job deleted", zap.String("id", id))
	respondOK(c, http.StatusOK, dtos.DeletePayload{DeletedID: id}, "Job application deleted successfully")
}

// ListColumns is GET /columns. Columns created through the API become valid
// drop targets for every job immediately.
func (h *JobHandler) ListColumns(c *gin.Context) {
	columns := h.JobService.ListColumns()
	respondOK(c, http.StatusOK, gin.H{"columns": columns, "total": len(columns)}, "Columns retrieved successfully")
}
