// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

// SignalEventUpdate is the builder for updating SignalEvent entities.
type SignalEventUpdate struct {
	config
	hooks    []Hook
	mutation *SignalEventMutation
}

// Where appends a list predicates to the SignalEventUpdate builder.
func (_u *SignalEventUpdate) Where(ps ...predicate.SignalEvent) *SignalEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserHandle sets the "user_handle" field.
func (_u *SignalEventUpdate) SetUserHandle(v string) *SignalEventUpdate {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *SignalEventUpdate) SetNillableUserHandle(v *string) *SignalEventUpdate {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SignalEventUpdate) SetKind(v string) *SignalEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SignalEventUpdate) SetNillableKind(v *string) *SignalEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SignalEventUpdate) SetValue(v float64) *SignalEventUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SignalEventUpdate) SetNillableValue(v *float64) *SignalEventUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SignalEventUpdate) AddValue(v float64) *SignalEventUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *SignalEventUpdate) SetScoreAfter(v float64) *SignalEventUpdate {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *SignalEventUpdate) SetNillableScoreAfter(v *float64) *SignalEventUpdate {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *SignalEventUpdate) AddScoreAfter(v float64) *SignalEventUpdate {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *SignalEventUpdate) SetStateAfter(v string) *SignalEventUpdate {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *SignalEventUpdate) SetNillableStateAfter(v *string) *SignalEventUpdate {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SignalEventUpdate) SetMetadata(v map[string]string) *SignalEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SignalEventUpdate) ClearMetadata() *SignalEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SignalEventMutation object of the builder.
func (_u *SignalEventUpdate) Mutation() *SignalEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignalEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignalEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignalEventUpdate) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := signalevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.user_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := signalevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SignalEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signalevent.Table, signalevent.Columns, sqlgraph.NewFieldSpec(signalevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserHandle(); ok {
		_spec.SetField(signalevent.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(signalevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(signalevent.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(signalevent.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(signalevent.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(signalevent.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(signalevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(signalevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(signalevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignalEventUpdateOne is the builder for updating a single SignalEvent entity.
type SignalEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignalEventMutation
}

// SetUserHandle sets the "user_handle" field.
func (_u *SignalEventUpdateOne) SetUserHandle(v string) *SignalEventUpdateOne {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *SignalEventUpdateOne) SetNillableUserHandle(v *string) *SignalEventUpdateOne {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SignalEventUpdateOne) SetKind(v string) *SignalEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SignalEventUpdateOne) SetNillableKind(v *string) *SignalEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *SignalEventUpdateOne) SetValue(v float64) *SignalEventUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SignalEventUpdateOne) SetNillableValue(v *float64) *SignalEventUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SignalEventUpdateOne) AddValue(v float64) *SignalEventUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *SignalEventUpdateOne) SetScoreAfter(v float64) *SignalEventUpdateOne {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *SignalEventUpdateOne) SetNillableScoreAfter(v *float64) *SignalEventUpdateOne {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *SignalEventUpdateOne) AddScoreAfter(v float64) *SignalEventUpdateOne {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// SetStateAfter sets the "state_after" field.
func (_u *SignalEventUpdateOne) SetStateAfter(v string) *SignalEventUpdateOne {
	_u.mutation.SetStateAfter(v)
	return _u
}

// SetNillableStateAfter sets the "state_after" field if the given value is not nil.
func (_u *SignalEventUpdateOne) SetNillableStateAfter(v *string) *SignalEventUpdateOne {
	if v != nil {
		_u.SetStateAfter(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *SignalEventUpdateOne) SetMetadata(v map[string]string) *SignalEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *SignalEventUpdateOne) ClearMetadata() *SignalEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the SignalEventMutation object of the builder.
func (_u *SignalEventUpdateOne) Mutation() *SignalEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SignalEventUpdate builder.
func (_u *SignalEventUpdateOne) Where(ps ...predicate.SignalEvent) *SignalEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignalEventUpdateOne) Select(field string, fields ...string) *SignalEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SignalEvent entity.
func (_u *SignalEventUpdateOne) Save(ctx context.Context) (*SignalEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignalEventUpdateOne) SaveX(ctx context.Context) *SignalEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignalEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignalEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignalEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := signalevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.user_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := signalevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *SignalEventUpdateOne) sqlSave(ctx context.Context) (_node *SignalEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signalevent.Table, signalevent.Columns, sqlgraph.NewFieldSpec(signalevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SignalEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signalevent.FieldID)
		for _, f := range fields {
			if !signalevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signalevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserHandle(); ok {
		_spec.SetField(signalevent.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(signalevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(signalevent.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(signalevent.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(signalevent.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(signalevent.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StateAfter(); ok {
		_spec.SetField(signalevent.FieldStateAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(signalevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(signalevent.FieldMetadata, field.TypeJSON)
	}
	_node = &SignalEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
