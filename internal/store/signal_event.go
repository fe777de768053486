package store

import (
	"context"
	"fmt"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

func (r *eventRepo) AppendSignal(ctx context.Context, data SignalEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SignalEvent.Create().
		SetSequence(seqNum).
		SetUserHandle(data.UserHandle).
		SetKind(data.Kind).
		SetValue(data.Value).
		SetScoreAfter(data.ScoreAfter).
		SetStateAfter(data.StateAfter)

	if len(data.Metadata) > 0 {
		builder = builder.SetMetadata(data.Metadata)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save signal event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySignalEvents(ctx context.Context, handle string, opts QueryOpts) ([]SignalEventRecord, error) {
	query := r.client.SignalEvent.Query().
		Order(ent.Desc(signalevent.FieldSequence))

	if handle != "" {
		query = query.Where(signalevent.UserHandle(handle))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(signalevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(signalevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(signalevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(signalevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query signal events: %w", err)
	}

	records := make([]SignalEventRecord, len(events))
	for i, e := range events {
		records[i] = SignalEventRecord{
			UserHandle: e.UserHandle,
			Kind:       e.Kind,
			Value:      e.Value,
			ScoreAfter: e.ScoreAfter,
			StateAfter: e.StateAfter,
			Metadata:   e.Metadata,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
