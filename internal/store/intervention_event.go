package store

import (
	"context"
	"fmt"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
)

func (r *eventRepo) AppendIntervention(ctx context.Context, data InterventionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.InterventionEvent.Create().
		SetSequence(seqNum).
		SetUserHandle(data.UserHandle).
		SetState(data.State).
		SetLevel(data.Level).
		SetAlignment(data.Alignment).
		SetMessage(data.Message).
		SetSuppressed(data.Suppressed).
		SetTriggerReason(data.TriggerReason).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save intervention event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryInterventionEvents(ctx context.Context, handle string, opts QueryOpts) ([]InterventionEventRecord, error) {
	query := r.client.InterventionEvent.Query().
		Order(ent.Desc(interventionevent.FieldSequence))

	if handle != "" {
		query = query.Where(interventionevent.UserHandle(handle))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(interventionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(interventionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(interventionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(interventionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query intervention events: %w", err)
	}

	records := make([]InterventionEventRecord, len(events))
	for i, e := range events {
		records[i] = InterventionEventRecord{
			UserHandle:    e.UserHandle,
			State:         e.State,
			Level:         e.Level,
			Alignment:     e.Alignment,
			Message:       e.Message,
			Suppressed:    e.Suppressed,
			TriggerReason: e.TriggerReason,
			Score:         e.Score,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}
