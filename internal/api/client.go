package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ytget/yt-remote/internal/model"
)

// Backend endpoints
const (
	PathDownload     = "/download"
	PathStatus       = "/status"
	PathHistory      = "/history"
	PathVerifyFFmpeg = "/api/verify-ffmpeg"
)

// DefaultTimeout bounds a single request to the backend
const DefaultTimeout = 30 * time.Second

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

// Client talks to the download backend over HTTP
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new backend client for baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Messages   *[]string `json:"messages"`
	InProgress bool      `json:"in_progress"`
}

type historyResponse struct {
	History []string `json:"history"`
}

type verifyResponse struct {
	OK bool `json:"ok"`
}

// StartJob submits a download job. A non-2xx reply is returned as *RejectedError,
// anything that keeps the reply from being read as *NetworkError.
func (c *Client) StartJob(ctx context.Context, req model.JobRequest) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathDownload, strings.NewReader(req.Encode()))
	if err != nil {
		return &NetworkError{Op: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", contentTypeForm)
	httpReq.Header.Set("Accept", contentTypeJSON)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &NetworkError{Op: "submit job", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var data errorResponse
		if len(bytes.TrimSpace(body)) > 0 {
			// A non-JSON error page still counts as a rejection
			_ = json.Unmarshal(body, &data)
		}
		return &RejectedError{StatusCode: resp.StatusCode, Message: data.Error}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return &NetworkError{Op: "decode response", Err: err}
	}
	return nil
}

// Status fetches the current status snapshot of the active job
func (c *Client) Status(ctx context.Context) (*model.StatusSnapshot, error) {
	var data statusResponse
	if err := c.getJSON(ctx, PathStatus, &data); err != nil {
		return nil, err
	}
	if data.Messages == nil {
		return nil, &NetworkError{Op: "decode status", Err: errors.New("missing messages")}
	}
	return &model.StatusSnapshot{
		Messages:   *data.Messages,
		InProgress: data.InProgress,
	}, nil
}

// History fetches the titles of previous downloads
func (c *Client) History(ctx context.Context) ([]string, error) {
	var data historyResponse
	if err := c.getJSON(ctx, PathHistory, &data); err != nil {
		return nil, err
	}
	if data.History == nil {
		return []string{}, nil
	}
	return data.History, nil
}

// VerifyFFmpeg asks the backend whether ffmpeg is installed
func (c *Client) VerifyFFmpeg(ctx context.Context) (bool, error) {
	var data verifyResponse
	if err := c.getJSON(ctx, PathVerifyFFmpeg, &data); err != nil {
		return false, err
	}
	return data.OK, nil
}

// getJSON issues a GET to path and decodes the JSON reply into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &NetworkError{Op: "create request", Err: err}
	}
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Op: "get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Op: "get " + path, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: "decode " + path, Err: err}
	}
	return nil
}
