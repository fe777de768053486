// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
)

// InterventionEventUpdate is the builder for updating InterventionEvent entities.
type InterventionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionEventMutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdate) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserHandle sets the "user_handle" field.
func (_u *InterventionEventUpdate) SetUserHandle(v string) *InterventionEventUpdate {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableUserHandle(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InterventionEventUpdate) SetState(v string) *InterventionEventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableState(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *InterventionEventUpdate) SetLevel(v string) *InterventionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableLevel(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAlignment sets the "alignment" field.
func (_u *InterventionEventUpdate) SetAlignment(v string) *InterventionEventUpdate {
	_u.mutation.SetAlignment(v)
	return _u
}

// SetNillableAlignment sets the "alignment" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableAlignment(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetAlignment(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InterventionEventUpdate) SetMessage(v string) *InterventionEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableMessage(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSuppressed sets the "suppressed" field.
func (_u *InterventionEventUpdate) SetSuppressed(v bool) *InterventionEventUpdate {
	_u.mutation.SetSuppressed(v)
	return _u
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableSuppressed(v *bool) *InterventionEventUpdate {
	if v != nil {
		_u.SetSuppressed(*v)
	}
	return _u
}

// SetTriggerReason sets the "trigger_reason" field.
func (_u *InterventionEventUpdate) SetTriggerReason(v string) *InterventionEventUpdate {
	_u.mutation.SetTriggerReason(v)
	return _u
}

// SetNillableTriggerReason sets the "trigger_reason" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableTriggerReason(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetTriggerReason(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterventionEventUpdate) SetScore(v float64) *InterventionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableScore(v *float64) *InterventionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterventionEventUpdate) AddScore(v float64) *InterventionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdate) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdate) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := interventionevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := interventionevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserHandle(); ok {
		_spec.SetField(interventionevent.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(interventionevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alignment(); ok {
		_spec.SetField(interventionevent.FieldAlignment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(interventionevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suppressed(); ok {
		_spec.SetField(interventionevent.FieldSuppressed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerReason(); ok {
		_spec.SetField(interventionevent.FieldTriggerReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interventionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interventionevent.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionEventUpdateOne is the builder for updating a single InterventionEvent entity.
type InterventionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionEventMutation
}

// SetUserHandle sets the "user_handle" field.
func (_u *InterventionEventUpdateOne) SetUserHandle(v string) *InterventionEventUpdateOne {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableUserHandle(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *InterventionEventUpdateOne) SetState(v string) *InterventionEventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableState(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *InterventionEventUpdateOne) SetLevel(v string) *InterventionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableLevel(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAlignment sets the "alignment" field.
func (_u *InterventionEventUpdateOne) SetAlignment(v string) *InterventionEventUpdateOne {
	_u.mutation.SetAlignment(v)
	return _u
}

// SetNillableAlignment sets the "alignment" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableAlignment(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetAlignment(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *InterventionEventUpdateOne) SetMessage(v string) *InterventionEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableMessage(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSuppressed sets the "suppressed" field.
func (_u *InterventionEventUpdateOne) SetSuppressed(v bool) *InterventionEventUpdateOne {
	_u.mutation.SetSuppressed(v)
	return _u
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableSuppressed(v *bool) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetSuppressed(*v)
	}
	return _u
}

// SetTriggerReason sets the "trigger_reason" field.
func (_u *InterventionEventUpdateOne) SetTriggerReason(v string) *InterventionEventUpdateOne {
	_u.mutation.SetTriggerReason(v)
	return _u
}

// SetNillableTriggerReason sets the "trigger_reason" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableTriggerReason(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetTriggerReason(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterventionEventUpdateOne) SetScore(v float64) *InterventionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableScore(v *float64) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterventionEventUpdateOne) AddScore(v float64) *InterventionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdateOne) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdateOne) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionEventUpdateOne) Select(field string, fields ...string) *InterventionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterventionEvent entity.
func (_u *InterventionEventUpdateOne) Save(ctx context.Context) (*InterventionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) SaveX(ctx context.Context) *InterventionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := interventionevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := interventionevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdateOne) sqlSave(ctx context.Context) (_node *InterventionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterventionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interventionevent.FieldID)
		for _, f := range fields {
			if !interventionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interventionevent.FieldID {
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
		_spec.SetField(interventionevent.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(interventionevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alignment(); ok {
		_spec.SetField(interventionevent.FieldAlignment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(interventionevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Suppressed(); ok {
		_spec.SetField(interventionevent.FieldSuppressed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TriggerReason(); ok {
		_spec.SetField(interventionevent.FieldTriggerReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interventionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interventionevent.FieldScore, field.TypeFloat64, value)
	}
	_node = &InterventionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
