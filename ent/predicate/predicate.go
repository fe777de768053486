// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CoachSession is the predicate function for coachsession builders.
type CoachSession func(*sql.Selector)

// InterventionEvent is the predicate function for interventionevent builders.
type InterventionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// SignalEvent is the predicate function for signalevent builders.
type SignalEvent func(*sql.Selector)
