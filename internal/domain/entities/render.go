package entities

// RenderStatus is the lifecycle state of a remote render job
type RenderStatus string

const (
	RenderStatusQueued     RenderStatus = "queued"
	RenderStatusInProgress RenderStatus = "in_progress"
	RenderStatusDone       RenderStatus = "done"
	RenderStatusFailed     RenderStatus = "failed"
	// RenderStatusTimedOut is terminal like failed, but means the polling
	// budget was exhausted before the renderer reported a final state.
	RenderStatusTimedOut RenderStatus = "timed_out"
)

// IsTerminal reports whether no further polling can change the status
func (s RenderStatus) IsTerminal() bool {
	return s == RenderStatusDone || s == RenderStatusFailed || s == RenderStatusTimedOut
}

// RenderJob tracks one submitted render. Mutated only by polling
// responses; done and failed (and timed_out) are terminal.
type RenderJob struct {
	RenderID string       `json:"render_id"`
	Status   RenderStatus `json:"status"`
	VideoURL string       `json:"video_url,omitempty"`
}
