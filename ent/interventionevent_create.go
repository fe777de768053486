// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/interventionevent"
)

// InterventionEventCreate is the builder for creating a InterventionEvent entity.
type InterventionEventCreate struct {
	config
	mutation *InterventionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterventionEventCreate) SetSequence(v int64) *InterventionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterventionEventCreate) SetTimestamp(v time.Time) *InterventionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTimestamp(v *time.Time) *InterventionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserHandle sets the "user_handle" field.
func (_c *InterventionEventCreate) SetUserHandle(v string) *InterventionEventCreate {
	_c.mutation.SetUserHandle(v)
	return _c
}

// SetState sets the "state" field.
func (_c *InterventionEventCreate) SetState(v string) *InterventionEventCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *InterventionEventCreate) SetLevel(v string) *InterventionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetAlignment sets the "alignment" field.
func (_c *InterventionEventCreate) SetAlignment(v string) *InterventionEventCreate {
	_c.mutation.SetAlignment(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *InterventionEventCreate) SetMessage(v string) *InterventionEventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableMessage(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetSuppressed sets the "suppressed" field.
func (_c *InterventionEventCreate) SetSuppressed(v bool) *InterventionEventCreate {
	_c.mutation.SetSuppressed(v)
	return _c
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableSuppressed(v *bool) *InterventionEventCreate {
	if v != nil {
		_c.SetSuppressed(*v)
	}
	return _c
}

// SetTriggerReason sets the "trigger_reason" field.
func (_c *InterventionEventCreate) SetTriggerReason(v string) *InterventionEventCreate {
	_c.mutation.SetTriggerReason(v)
	return _c
}

// SetNillableTriggerReason sets the "trigger_reason" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTriggerReason(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetTriggerReason(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *InterventionEventCreate) SetScore(v float64) *InterventionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_c *InterventionEventCreate) Mutation() *InterventionEventMutation {
	return _c.mutation
}

// Save creates the InterventionEvent in the database.
func (_c *InterventionEventCreate) Save(ctx context.Context) (*InterventionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionEventCreate) SaveX(ctx context.Context) *InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interventionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := interventionevent.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.Suppressed(); !ok {
		v := interventionevent.DefaultSuppressed
		_c.mutation.SetSuppressed(v)
	}
	if _, ok := _c.mutation.TriggerReason(); !ok {
		v := interventionevent.DefaultTriggerReason
		_c.mutation.SetTriggerReason(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterventionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterventionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserHandle(); !ok {
		return &ValidationError{Name: "user_handle", err: errors.New(`ent: missing required field "InterventionEvent.user_handle"`)}
	}
	if v, ok := _c.mutation.UserHandle(); ok {
		if err := interventionevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.user_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "InterventionEvent.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := interventionevent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "InterventionEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := interventionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Alignment(); !ok {
		return &ValidationError{Name: "alignment", err: errors.New(`ent: missing required field "InterventionEvent.alignment"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "InterventionEvent.message"`)}
	}
	if _, ok := _c.mutation.Suppressed(); !ok {
		return &ValidationError{Name: "suppressed", err: errors.New(`ent: missing required field "InterventionEvent.suppressed"`)}
	}
	if _, ok := _c.mutation.TriggerReason(); !ok {
		return &ValidationError{Name: "trigger_reason", err: errors.New(`ent: missing required field "InterventionEvent.trigger_reason"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "InterventionEvent.score"`)}
	}
	return nil
}

func (_c *InterventionEventCreate) sqlSave(ctx context.Context) (*InterventionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterventionEventCreate) createSpec() (*InterventionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterventionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interventionevent.Table, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interventionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interventionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserHandle(); ok {
		_spec.SetField(interventionevent.FieldUserHandle, field.TypeString, value)
		_node.UserHandle = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(interventionevent.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(interventionevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Alignment(); ok {
		_spec.SetField(interventionevent.FieldAlignment, field.TypeString, value)
		_node.Alignment = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(interventionevent.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Suppressed(); ok {
		_spec.SetField(interventionevent.FieldSuppressed, field.TypeBool, value)
		_node.Suppressed = value
	}
	if value, ok := _c.mutation.TriggerReason(); ok {
		_spec.SetField(interventionevent.FieldTriggerReason, field.TypeString, value)
		_node.TriggerReason = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(interventionevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	return _node, _spec
}

// InterventionEventCreateBulk is the builder for creating many InterventionEvent entities in bulk.
type InterventionEventCreateBulk struct {
	config
	err      error
	builders []*InterventionEventCreate
}

// Save creates the InterventionEvent entities in the database.
func (_c *InterventionEventCreateBulk) Save(ctx context.Context) ([]*InterventionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterventionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) SaveX(ctx context.Context) []*InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
