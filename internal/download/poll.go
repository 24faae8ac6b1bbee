package download

import (
	"context"
	"log"
	"time"

	"github.com/ytget/yt-remote/internal/model"
)

// pollCycle is one run of the status loop. Its cancel func is the only
// live timer handle; the controller holds at most one cycle.
type pollCycle struct {
	jobID    string
	cancel   context.CancelFunc
	finished chan struct{}
	started  time.Time

	issued  uint64 // sequence number of the last request sent
	applied uint64 // sequence number of the last snapshot rendered
}

// enterPolling replaces any running cycle with a new one. c.mu must be held.
func (c *Controller) enterPolling(jobID string) {
	c.stopPolling()

	ctx, cancel := context.WithCancel(context.Background())
	cycle := &pollCycle{
		jobID:    jobID,
		cancel:   cancel,
		finished: make(chan struct{}),
		started:  time.Now(),
	}
	c.cycle = cycle
	c.state = model.PollPolling

	log.Printf("[JOB %s] Polling status every %v", jobID, c.opts.PollInterval)
	go c.runCycle(ctx, cycle)
}

// stopPolling cancels the running cycle, if any. c.mu must be held.
func (c *Controller) stopPolling() {
	if c.cycle == nil {
		return
	}
	c.cycle.cancel()
	close(c.cycle.finished)
	c.cycle = nil
	c.state = model.PollIdle
}

// runCycle fires one status request per interval until the cycle is cancelled.
// Requests do not wait for each other.
func (c *Controller) runCycle(ctx context.Context, cycle *pollCycle) {
	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq, ok := c.nextSeq(cycle)
			if !ok {
				return
			}
			go c.tick(ctx, cycle, seq)
		}
	}
}

// nextSeq reserves the next sequence number, or reports that the cycle is over
func (c *Controller) nextSeq(cycle *pollCycle) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycle != cycle {
		return 0, false
	}
	cycle.issued++
	return cycle.issued, true
}

// tick performs one status request and applies its answer
func (c *Controller) tick(ctx context.Context, cycle *pollCycle, seq uint64) {
	reqCtx := ctx
	if c.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.opts.RequestTimeout)
		defer cancel()
	}

	snapshot, err := c.backend.Status(reqCtx)
	if err != nil {
		if ctx.Err() == nil {
			// The next tick retries
			log.Printf("Polling error: %v", err)
		}
		return
	}

	snapshot.Seq = seq
	c.apply(cycle, snapshot)
}

// apply renders snapshot if it is the newest answer of the live cycle and
// ends the cycle when the backend reports the job is over. Answers that
// arrive after a newer one are dropped.
func (c *Controller) apply(cycle *pollCycle, snapshot *model.StatusSnapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cycle != cycle {
		return false
	}
	if snapshot.Seq <= cycle.applied {
		log.Printf("[JOB %s] Dropped stale status #%d (already showing #%d)", cycle.jobID, snapshot.Seq, cycle.applied)
		return false
	}
	cycle.applied = snapshot.Seq

	c.view.SetStatusText(snapshot.Text())

	if snapshot.IsTerminal() {
		log.Printf("[JOB %s] Finished after %d status requests in %v", cycle.jobID, cycle.issued, time.Since(cycle.started).Round(time.Millisecond))
		c.stopPolling()
		c.view.SetSubmitEnabled(true)
	}
	return true
}
