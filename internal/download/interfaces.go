package download

import (
	"context"

	"github.com/ytget/yt-remote/internal/model"
)

// Backend defines the download backend the controller drives.
type Backend interface {
	StartJob(ctx context.Context, req model.JobRequest) error
	Status(ctx context.Context) (*model.StatusSnapshot, error)
	History(ctx context.Context) ([]string, error)
	VerifyFFmpeg(ctx context.Context) (bool, error)
}

// View defines what the controller renders. Calls may arrive from any
// goroutine and must not call back into the controller synchronously.
type View interface {
	// SetSubmitEnabled enables or disables the submit control
	SetSubmitEnabled(enabled bool)

	// ClearMessage removes the last success or error message
	ClearMessage()

	ShowError(msg string)
	ShowSuccess(msg string)

	// SetStatusText replaces the displayed job status
	SetStatusText(text string)
}
