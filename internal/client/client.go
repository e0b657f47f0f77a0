// HTTP client for the applications API, used by the board controller and
// anything else that needs the REST surface from Go.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Yash-4120/applyflow/internal/dtos"
	"github.com/Yash-4120/applyflow/internal/models"
)

// APIError is the server's error envelope surfaced as a Go error.
type APIError struct {
	StatusCode int
	Label      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Label)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do sends one request and decodes the response body into out. Non-2xx
// responses are decoded into the standard error envelope and returned as an
// *APIError carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope dtos.APIError
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Label: resp.Status}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Label:      envelope.Error,
			Message:    envelope.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

// GetAllJobs returns every job application.
func (c *Client) GetAllJobs(ctx context.Context) ([]models.Job, error) {
	var resp struct {
		Data dtos.JobsPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/applications", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Jobs, nil
}

// GetJobsByColumn returns the jobs currently in one column.
func (c *Client) GetJobsByColumn(ctx context.Context, columnID string) ([]models.Job, error) {
	var resp struct {
		Data dtos.JobsPayload `json:"data"`
	}
	path := "/applications?column=" + url.QueryEscape(columnID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Jobs, nil
}

// SearchJobs matches title and company name case-insensitively.
func (c *Client) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	var resp struct {
		Data dtos.JobsPayload `json:"data"`
	}
	path := "/applications?search=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Jobs, nil
}

func (c *Client) GetJobByID(ctx context.Context, id string) (models.Job, error) {
	var resp struct {
		Data dtos.JobPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/applications/"+url.PathEscape(id), nil, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Data.Job, nil
}

func (c *Client) CreateJob(ctx context.Context, req dtos.CreateJobRequest) (models.Job, error) {
	var resp struct {
		Data dtos.JobPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/applications", req, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Data.Job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch dtos.UpdateJobRequest) (models.Job, error) {
	var resp struct {
		Data dtos.JobPayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/applications/"+url.PathEscape(id), patch, &resp); err != nil {
		return models.Job{}, err
	}
	return resp.Data.Job, nil
}

// DeleteJob removes a job and returns the deleted id the server confirmed.
func (c *Client) DeleteJob(ctx context.Context, id string) (string, error) {
	var resp struct {
		Data dtos.DeletePayload `json:"data"`
	}
	if err := c.do(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Data.DeletedID, nil
}

// MoveJob reassigns a job to a different column through the update endpoint.
func (c *Client) MoveJob(ctx context.Context, id, columnID string) (models.Job, error) {
	return c.UpdateJob(ctx, id, dtos.UpdateJobRequest{ColumnID: &columnID})
}

// GetColumns returns the live column set.
func (c *Client) GetColumns(ctx context.Context) ([]models.Column, error) {
	var resp struct {
		Data struct {
			Columns []models.Column `json:"columns"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/columns", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Columns, nil
}
