package model

// PollState represents the state of the submission controller's poll loop
type PollState string

const (
	// PollIdle means no poll cycle is running
	PollIdle PollState = "Idle"

	// PollPolling means a poll cycle is running for the active job
	PollPolling PollState = "Polling"
)

// String returns the string representation of PollState
func (ps PollState) String() string {
	return string(ps)
}

// IsPolling returns true if a poll cycle is running
func (ps PollState) IsPolling() bool {
	return ps == PollPolling
}

// ToolStatus is the text of the ffmpeg verification pill
type ToolStatus string

const (
	ToolUnknown  ToolStatus = ""
	ToolChecking ToolStatus = "Checking..."
	ToolVerified ToolStatus = "Verified"
	ToolNotFound ToolStatus = "Not found"
	ToolError    ToolStatus = "Error"
)

// PillTone selects the pill color for a tool status
type PillTone string

const (
	PillNeutral PillTone = "neutral"
	PillOK      PillTone = "ok"
	PillBad     PillTone = "bad"
)

// String returns the string representation of ToolStatus
func (ts ToolStatus) String() string {
	return string(ts)
}

// Tone returns the pill tone for the status
func (ts ToolStatus) Tone() PillTone {
	switch ts {
	case ToolVerified:
		return PillOK
	case ToolNotFound, ToolError:
		return PillBad
	default:
		return PillNeutral
	}
}

// IsFinal returns true once a verification attempt has produced an answer
func (ts ToolStatus) IsFinal() bool {
	return ts == ToolVerified || ts == ToolNotFound || ts == ToolError
}
