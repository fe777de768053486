package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/coach"
)

// sessionRepo implements SessionRepo using the ent client. The full
// session travels through the data JSON column; burnout_score and
// current_state are extracted into columns for cheap inspection.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Load(ctx context.Context, handle string) (*coach.Session, error) {
	row, err := r.client.CoachSession.Query().
		Where(coachsession.UserHandle(handle)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %q: %w", handle, err)
	}

	sess, err := mapToSession(row.Data)
	if err != nil {
		return nil, &coach.ErrMalformedSession{Handle: handle, Reason: err.Error()}
	}
	return sess, nil
}

func (r *sessionRepo) Save(ctx context.Context, sess *coach.Session) error {
	dataMap, err := sessionToMap(sess)
	if err != nil {
		return fmt.Errorf("marshal session %q: %w", sess.UserHandle, err)
	}

	existing, err := r.client.CoachSession.Query().
		Where(coachsession.UserHandle(sess.UserHandle)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session %q: %w", sess.UserHandle, err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetBurnoutScore(sess.BurnoutScore).
			SetCurrentState(sess.CurrentState.String()).
			SetData(dataMap).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update session %q: %w", sess.UserHandle, err)
		}
		return nil
	}

	_, err = r.client.CoachSession.Create().
		SetUserHandle(sess.UserHandle).
		SetBurnoutScore(sess.BurnoutScore).
		SetCurrentState(sess.CurrentState.String()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %q: %w", sess.UserHandle, err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, handle string) error {
	_, err := r.client.CoachSession.Delete().
		Where(coachsession.UserHandle(handle)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %q: %w", handle, err)
	}
	return nil
}

func (r *sessionRepo) Handles(ctx context.Context) ([]string, error) {
	handles, err := r.client.CoachSession.Query().
		Order(ent.Asc(coachsession.FieldUserHandle)).
		Select(coachsession.FieldUserHandle).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session handles: %w", err)
	}
	return handles, nil
}

// sessionToMap converts a session to map[string]any for ent JSON storage.
func sessionToMap(sess *coach.Session) (map[string]any, error) {
	b, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToSession converts the stored data column back to a session.
func mapToSession(data map[string]any) (*coach.Session, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var sess coach.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
