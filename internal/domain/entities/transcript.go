package entities

import "sort"

// TranscriptionSource tags which backend produced a transcription result
type TranscriptionSource string

const (
	TranscriptionSourceWhisper    TranscriptionSource = "whisper"
	TranscriptionSourceAssemblyAI TranscriptionSource = "assemblyai"
	TranscriptionSourceFallback   TranscriptionSource = "fallback"
)

// DefaultTranscriptDurationSeconds is used when a backend reports no
// duration and no segments exist to derive one from.
const DefaultTranscriptDurationSeconds = 30

// TranscriptSegment is a time-aligned slice of transcript text.
// Timestamps are seconds; End >= Start for every segment.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the output of the transcription stage for one
// video reference. Owned by the transcription coordinator; downstream
// stages treat it as read-only.
type TranscriptionResult struct {
	Text            string              `json:"text"`
	Segments        []TranscriptSegment `json:"segments"`
	Language        string              `json:"language"`
	DurationSeconds float64             `json:"duration"`
	Insights        []string            `json:"key_insights,omitempty"`

	// Source and Degraded distinguish a real transcription from the
	// canned fallback. The external contract looks identical either way;
	// callers that care can assert on these.
	Source        TranscriptionSource `json:"source"`
	Degraded      bool                `json:"degraded"`
	DegradedCause string              `json:"degraded_cause,omitempty"`
}

// Clone returns a copy the holder may enrich without affecting other
// holders of the same settled result.
func (t *TranscriptionResult) Clone() *TranscriptionResult {
	if t == nil {
		return nil
	}
	c := *t
	c.Segments = append([]TranscriptSegment(nil), t.Segments...)
	c.Insights = append([]string(nil), t.Insights...)
	return &c
}

// Normalize orders segments by start time and derives the duration as the
// maximum segment end when the backend did not report one. An empty
// segment list falls back to the fixed default.
func (t *TranscriptionResult) Normalize() {
	sort.SliceStable(t.Segments, func(i, j int) bool {
		return t.Segments[i].Start < t.Segments[j].Start
	})

	if t.DurationSeconds > 0 {
		return
	}
	if len(t.Segments) == 0 {
		t.DurationSeconds = DefaultTranscriptDurationSeconds
		return
	}
	max := 0.0
	for _, s := range t.Segments {
		if s.End > max {
			max = s.End
		}
	}
	t.DurationSeconds = max
}
