package store

import (
	"context"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/signal"
)

// Recorder adapts an EventRepo to the coach engine's EventRecorder,
// translating pipeline results into stored event rows.
type Recorder struct {
	events EventRepo
}

// NewRecorder creates a Recorder over events.
func NewRecorder(events EventRepo) *Recorder {
	return &Recorder{events: events}
}

func (r *Recorder) RecordSignal(ctx context.Context, handle string, sig signal.Signal, res *coach.Result) error {
	return r.events.AppendSignal(ctx, SignalEventData{
		UserHandle: handle,
		Kind:       string(sig.Kind),
		Value:      sig.Value,
		ScoreAfter: res.Score,
		StateAfter: res.State.String(),
		Metadata:   sig.Metadata,
	})
}

func (r *Recorder) RecordIntervention(ctx context.Context, handle string, res *coach.Result) error {
	return r.events.AppendIntervention(ctx, InterventionEventData{
		UserHandle:    handle,
		State:         res.State.String(),
		Level:         res.Level.String(),
		Alignment:     string(res.Alignment),
		Message:       res.Message,
		Suppressed:    res.Suppressed,
		TriggerReason: res.TriggerReason,
		Score:         res.Score,
	})
}
