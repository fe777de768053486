// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
)

// CoachSessionUpdate is the builder for updating CoachSession entities.
type CoachSessionUpdate struct {
	config
	hooks    []Hook
	mutation *CoachSessionMutation
}

// Where appends a list predicates to the CoachSessionUpdate builder.
func (_u *CoachSessionUpdate) Where(ps ...predicate.CoachSession) *CoachSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserHandle sets the "user_handle" field.
func (_u *CoachSessionUpdate) SetUserHandle(v string) *CoachSessionUpdate {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableUserHandle(v *string) *CoachSessionUpdate {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetBurnoutScore sets the "burnout_score" field.
func (_u *CoachSessionUpdate) SetBurnoutScore(v float64) *CoachSessionUpdate {
	_u.mutation.ResetBurnoutScore()
	_u.mutation.SetBurnoutScore(v)
	return _u
}

// SetNillableBurnoutScore sets the "burnout_score" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableBurnoutScore(v *float64) *CoachSessionUpdate {
	if v != nil {
		_u.SetBurnoutScore(*v)
	}
	return _u
}

// AddBurnoutScore adds value to the "burnout_score" field.
func (_u *CoachSessionUpdate) AddBurnoutScore(v float64) *CoachSessionUpdate {
	_u.mutation.AddBurnoutScore(v)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *CoachSessionUpdate) SetCurrentState(v string) *CoachSessionUpdate {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *CoachSessionUpdate) SetNillableCurrentState(v *string) *CoachSessionUpdate {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CoachSessionUpdate) SetData(v map[string]interface{}) *CoachSessionUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CoachSessionUpdate) SetLastUpdated(v time.Time) *CoachSessionUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_u *CoachSessionUpdate) Mutation() *CoachSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoachSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoachSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoachSessionUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := coachsession.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachSessionUpdate) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := coachsession.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "CoachSession.user_handle": %w`, err)}
		}
	}
	return nil
}

func (_u *CoachSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachsession.Table, coachsession.Columns, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserHandle(); ok {
		_spec.SetField(coachsession.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BurnoutScore(); ok {
		_spec.SetField(coachsession.FieldBurnoutScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBurnoutScore(); ok {
		_spec.AddField(coachsession.FieldBurnoutScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(coachsession.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(coachsession.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(coachsession.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoachSessionUpdateOne is the builder for updating a single CoachSession entity.
type CoachSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoachSessionMutation
}

// SetUserHandle sets the "user_handle" field.
func (_u *CoachSessionUpdateOne) SetUserHandle(v string) *CoachSessionUpdateOne {
	_u.mutation.SetUserHandle(v)
	return _u
}

// SetNillableUserHandle sets the "user_handle" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableUserHandle(v *string) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetUserHandle(*v)
	}
	return _u
}

// SetBurnoutScore sets the "burnout_score" field.
func (_u *CoachSessionUpdateOne) SetBurnoutScore(v float64) *CoachSessionUpdateOne {
	_u.mutation.ResetBurnoutScore()
	_u.mutation.SetBurnoutScore(v)
	return _u
}

// SetNillableBurnoutScore sets the "burnout_score" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableBurnoutScore(v *float64) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetBurnoutScore(*v)
	}
	return _u
}

// AddBurnoutScore adds value to the "burnout_score" field.
func (_u *CoachSessionUpdateOne) AddBurnoutScore(v float64) *CoachSessionUpdateOne {
	_u.mutation.AddBurnoutScore(v)
	return _u
}

// SetCurrentState sets the "current_state" field.
func (_u *CoachSessionUpdateOne) SetCurrentState(v string) *CoachSessionUpdateOne {
	_u.mutation.SetCurrentState(v)
	return _u
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_u *CoachSessionUpdateOne) SetNillableCurrentState(v *string) *CoachSessionUpdateOne {
	if v != nil {
		_u.SetCurrentState(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CoachSessionUpdateOne) SetData(v map[string]interface{}) *CoachSessionUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CoachSessionUpdateOne) SetLastUpdated(v time.Time) *CoachSessionUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_u *CoachSessionUpdateOne) Mutation() *CoachSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoachSessionUpdate builder.
func (_u *CoachSessionUpdateOne) Where(ps ...predicate.CoachSession) *CoachSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoachSessionUpdateOne) Select(field string, fields ...string) *CoachSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoachSession entity.
func (_u *CoachSessionUpdateOne) Save(ctx context.Context) (*CoachSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoachSessionUpdateOne) SaveX(ctx context.Context) *CoachSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoachSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoachSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CoachSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := coachsession.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoachSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserHandle(); ok {
		if err := coachsession.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "CoachSession.user_handle": %w`, err)}
		}
	}
	return nil
}

func (_u *CoachSessionUpdateOne) sqlSave(ctx context.Context) (_node *CoachSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coachsession.Table, coachsession.Columns, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoachSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coachsession.FieldID)
		for _, f := range fields {
			if !coachsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coachsession.FieldID {
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
		_spec.SetField(coachsession.FieldUserHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.BurnoutScore(); ok {
		_spec.SetField(coachsession.FieldBurnoutScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBurnoutScore(); ok {
		_spec.AddField(coachsession.FieldBurnoutScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentState(); ok {
		_spec.SetField(coachsession.FieldCurrentState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(coachsession.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(coachsession.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &CoachSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coachsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
