// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/coachsession"
)

// CoachSessionCreate is the builder for creating a CoachSession entity.
type CoachSessionCreate struct {
	config
	mutation *CoachSessionMutation
	hooks    []Hook
}

// SetUserHandle sets the "user_handle" field.
func (_c *CoachSessionCreate) SetUserHandle(v string) *CoachSessionCreate {
	_c.mutation.SetUserHandle(v)
	return _c
}

// SetBurnoutScore sets the "burnout_score" field.
func (_c *CoachSessionCreate) SetBurnoutScore(v float64) *CoachSessionCreate {
	_c.mutation.SetBurnoutScore(v)
	return _c
}

// SetNillableBurnoutScore sets the "burnout_score" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableBurnoutScore(v *float64) *CoachSessionCreate {
	if v != nil {
		_c.SetBurnoutScore(*v)
	}
	return _c
}

// SetCurrentState sets the "current_state" field.
func (_c *CoachSessionCreate) SetCurrentState(v string) *CoachSessionCreate {
	_c.mutation.SetCurrentState(v)
	return _c
}

// SetNillableCurrentState sets the "current_state" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableCurrentState(v *string) *CoachSessionCreate {
	if v != nil {
		_c.SetCurrentState(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *CoachSessionCreate) SetData(v map[string]interface{}) *CoachSessionCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *CoachSessionCreate) SetLastUpdated(v time.Time) *CoachSessionCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *CoachSessionCreate) SetNillableLastUpdated(v *time.Time) *CoachSessionCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the CoachSessionMutation object of the builder.
func (_c *CoachSessionCreate) Mutation() *CoachSessionMutation {
	return _c.mutation
}

// Save creates the CoachSession in the database.
func (_c *CoachSessionCreate) Save(ctx context.Context) (*CoachSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoachSessionCreate) SaveX(ctx context.Context) *CoachSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoachSessionCreate) defaults() {
	if _, ok := _c.mutation.BurnoutScore(); !ok {
		v := coachsession.DefaultBurnoutScore
		_c.mutation.SetBurnoutScore(v)
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		v := coachsession.DefaultCurrentState
		_c.mutation.SetCurrentState(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := coachsession.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoachSessionCreate) check() error {
	if _, ok := _c.mutation.UserHandle(); !ok {
		return &ValidationError{Name: "user_handle", err: errors.New(`ent: missing required field "CoachSession.user_handle"`)}
	}
	if v, ok := _c.mutation.UserHandle(); ok {
		if err := coachsession.UserHandleValidator(v); err != nil {
			return &ValidationError{Name: "user_handle", err: fmt.Errorf(`ent: validator failed for field "CoachSession.user_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BurnoutScore(); !ok {
		return &ValidationError{Name: "burnout_score", err: errors.New(`ent: missing required field "CoachSession.burnout_score"`)}
	}
	if _, ok := _c.mutation.CurrentState(); !ok {
		return &ValidationError{Name: "current_state", err: errors.New(`ent: missing required field "CoachSession.current_state"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CoachSession.data"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "CoachSession.last_updated"`)}
	}
	return nil
}

func (_c *CoachSessionCreate) sqlSave(ctx context.Context) (*CoachSession, error) {
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

func (_c *CoachSessionCreate) createSpec() (*CoachSession, *sqlgraph.CreateSpec) {
	var (
		_node = &CoachSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coachsession.Table, sqlgraph.NewFieldSpec(coachsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserHandle(); ok {
		_spec.SetField(coachsession.FieldUserHandle, field.TypeString, value)
		_node.UserHandle = value
	}
	if value, ok := _c.mutation.BurnoutScore(); ok {
		_spec.SetField(coachsession.FieldBurnoutScore, field.TypeFloat64, value)
		_node.BurnoutScore = value
	}
	if value, ok := _c.mutation.CurrentState(); ok {
		_spec.SetField(coachsession.FieldCurrentState, field.TypeString, value)
		_node.CurrentState = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(coachsession.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(coachsession.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// CoachSessionCreateBulk is the builder for creating many CoachSession entities in bulk.
type CoachSessionCreateBulk struct {
	config
	err      error
	builders []*CoachSessionCreate
}

// Save creates the CoachSession entities in the database.
func (_c *CoachSessionCreateBulk) Save(ctx context.Context) ([]*CoachSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoachSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoachSessionMutation)
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
func (_c *CoachSessionCreateBulk) SaveX(ctx context.Context) []*CoachSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoachSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoachSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
