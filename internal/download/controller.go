package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-remote/internal/api"
	"github.com/ytget/yt-remote/internal/model"
)

// Messages shown by the controller
const (
	MsgDownloadStarted = "Download started!"
	MsgNetworkError    = "Network error: "
)

// DefaultPollInterval is the period of status requests while a job runs
const DefaultPollInterval = 1000 * time.Millisecond

const jobIDPrefix = "job-"

var (
	// ErrBusy is returned when a job is being submitted or polled already
	ErrBusy = errors.New("a download is already in progress")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("controller is closed")
)

// Options configures a Controller
type Options struct {
	PollInterval time.Duration

	// RequestTimeout bounds each status request; zero leaves it to the backend client
	RequestTimeout time.Duration

	Formats model.FormatOptions
}

// Controller owns the lifecycle of the one job in flight
type Controller struct {
	backend Backend
	view    View
	opts    Options

	mu         sync.Mutex
	state      model.PollState
	submitting bool
	closed     bool
	cycle      *pollCycle
}

// NewController creates a new controller in the Idle state
func NewController(backend Backend, view View, opts Options) *Controller {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if len(opts.Formats.Formats) == 0 {
		opts.Formats = model.DefaultFormatOptions()
	}
	return &Controller{
		backend: backend,
		view:    view,
		opts:    opts,
		state:   model.PollIdle,
	}
}

// State returns the current poll state
func (c *Controller) State() model.PollState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Formats returns the format options the controller builds requests with
func (c *Controller) Formats() model.FormatOptions {
	return c.opts.Formats
}

// Submit validates input, starts the job and, once the backend accepts it,
// begins polling. The submit control stays disabled until polling ends.
func (c *Controller) Submit(ctx context.Context, input model.FormInput) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.submitting || c.state.IsPolling() {
		c.mu.Unlock()
		return ErrBusy
	}
	c.submitting = true
	c.view.SetSubmitEnabled(false)
	c.view.ClearMessage()
	c.mu.Unlock()

	jobID := generateJobID()

	req, err := model.NewJobRequest(input, c.opts.Formats)
	if err != nil {
		log.Printf("[JOB %s] Rejected input: %v", jobID, err)
		c.mu.Lock()
		c.submitting = false
		c.view.ShowError(err.Error())
		c.view.SetSubmitEnabled(true)
		c.mu.Unlock()
		return err
	}

	log.Printf("[JOB %s] Submitting %s (format=%s)", jobID, req.URL, req.Format)
	err = c.backend.StartJob(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if c.closed {
		// Torn down while the request was in flight; the view is left as is
		log.Printf("[JOB %s] Controller closed during submission (err=%v)", jobID, err)
		if err != nil {
			return fmt.Errorf("start job: %w", err)
		}
		return nil
	}

	if err != nil {
		var rejected *api.RejectedError
		if errors.As(err, &rejected) {
			log.Printf("[JOB %s] Backend rejected job (status %d): %s", jobID, rejected.StatusCode, rejected.Error())
			c.view.ShowError(rejected.Error())
		} else {
			log.Printf("[JOB %s] Submission failed: %v", jobID, err)
			c.view.ShowError(MsgNetworkError + err.Error())
		}
		c.view.SetSubmitEnabled(true)
		return fmt.Errorf("start job: %w", err)
	}

	c.view.ShowSuccess(MsgDownloadStarted)
	c.enterPolling(jobID)
	return nil
}

// Wait blocks until the current poll cycle ends or ctx is done.
// It returns immediately when nothing is being polled.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	cycle := c.cycle
	c.mu.Unlock()

	if cycle == nil {
		return nil
	}

	select {
	case <-cycle.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops any poll cycle without re-enabling the submit control.
// It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.cycle != nil {
		log.Printf("[JOB %s] Polling stopped on teardown", c.cycle.jobID)
	}
	c.stopPolling()
}

// History fetches the titles of finished downloads
func (c *Controller) History(ctx context.Context) ([]string, error) {
	titles, err := c.backend.History(ctx)
	if err != nil {
		log.Printf("Failed to fetch history: %v", err)
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	return titles, nil
}

// VerifyFFmpeg asks the backend whether ffmpeg is available. Failures are
// reported through the returned status only.
func (c *Controller) VerifyFFmpeg(ctx context.Context) model.ToolStatus {
	ok, err := c.backend.VerifyFFmpeg(ctx)
	if err != nil {
		log.Printf("FFmpeg verification failed: %v", err)
		return model.ToolError
	}
	if !ok {
		return model.ToolNotFound
	}
	return model.ToolVerified
}

// generateJobID generates a unique job ID using UUID v7 so ids sort by time
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(jobIDPrefix+"%d", time.Now().UnixNano())
	}
	return jobIDPrefix + id.String()
}
