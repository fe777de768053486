// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/signalevent"
)

// SignalEventCreate is the builder for creating a SignalEvent entity.
type SignalEventCreate struct {
	config
	mutation *SignalEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SignalEventCreate) SetSequence(v int64) *SignalEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SignalEventCreate) SetTimestamp(v time.Time) *SignalEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SignalEventCreate) SetNillableTimestamp(v *time.Time) *SignalEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserHandle sets the "user_handle" field.
func (_c *SignalEventCreate) SetUserHandle(v string) *SignalEventCreate {
	_c.mutation.SetUserHandle(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SignalEventCreate) SetKind(v string) *SignalEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SignalEventCreate) SetValue(v float64) *SignalEventCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *SignalEventCreate) SetNillableValue(v *float64) *SignalEventCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetScoreAfter sets the "score_after" field.
func (_c *SignalEventCreate) SetScoreAfter(v float64) *SignalEventCreate {
	_c.mutation.SetScoreAfter(v)
	return _c
}

// SetStateAfter sets the "state_after" field.
func (_c *SignalEventCreate) SetStateAfter(v string) *SignalEventCreate {
	_c.mutation.SetStateAfter(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *SignalEventCreate) SetMetadata(v map[string]string) *SignalEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// Mutation returns the SignalEventMutation object of the builder.
func (_c *SignalEventCreate) Mutation() *SignalEventMutation {
	return _c.mutation
}

// Save creates the SignalEvent in the database.
func (_c *SignalEventCreate) Save(ctx context.Context) (*SignalEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignalEventCreate) SaveX(ctx context.Context) *SignalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignalEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := signalevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Value(); !ok {
		v := signalevent.DefaultValue
		_c.mutation.SetValue(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignalEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SignalEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SignalEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserHandle(); !ok {
		return &ValidationError{Name: "user_handle", err: errors.New(`ent: missing required field "SignalEvent.user_handle"`)}
	}
	if v, ok := _c.mutation.UserHandle(); ok {
		if err := signalevent.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.user_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SignalEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := signalevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SignalEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SignalEvent.value"`)}
	}
	if _, ok := _c.mutation.ScoreAfter(); !ok {
		return &ValidationError{Name: "score_after", err: errors.New(`ent: missing required field "SignalEvent.score_after"`)}
	}
	if _, ok := _c.mutation.StateAfter(); !ok {
		return &ValidationError{Name: "state_after", err: errors.New(`ent: missing required field "SignalEvent.state_after"`)}
	}
	return nil
}

func (_c *SignalEventCreate) sqlSave(ctx context.Context) (*SignalEvent, error) {
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

func (_c *SignalEventCreate) createSpec() (*SignalEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SignalEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signalevent.Table, sqlgraph.NewFieldSpec(signalevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(signalevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(signalevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserHandle(); ok {
		_spec.SetField(signalevent.FieldUserHandle, field.TypeString, value)
		_node.UserHandle = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(signalevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(signalevent.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.ScoreAfter(); ok {
		_spec.SetField(signalevent.FieldScoreAfter, field.TypeFloat64, value)
		_node.ScoreAfter = value
	}
	if value, ok := _c.mutation.StateAfter(); ok {
		_spec.SetField(signalevent.FieldStateAfter, field.TypeString, value)
		_node.StateAfter = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(signalevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// SignalEventCreateBulk is the builder for creating many SignalEvent entities in bulk.
type SignalEventCreateBulk struct {
	config
	err      error
	builders []*SignalEventCreate
}

// Save creates the SignalEvent entities in the database.
func (_c *SignalEventCreateBulk) Save(ctx context.Context) ([]*SignalEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SignalEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignalEventMutation)
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
func (_c *SignalEventCreateBulk) SaveX(ctx context.Context) []*SignalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignalEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignalEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
