// Code generated by ent, DO NOT EDIT.

package coachsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldID, id))
}

// UserHandle applies equality check predicate on the "user_handle" field. It's identical to UserHandleEQ.
func UserHandle(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldUserHandle, v))
}

// BurnoutScore applies equality check predicate on the "burnout_score" field. It's identical to BurnoutScoreEQ.
func BurnoutScore(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldBurnoutScore, v))
}

// CurrentState applies equality check predicate on the "current_state" field. It's identical to CurrentStateEQ.
func CurrentState(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldCurrentState, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldLastUpdated, v))
}

// UserHandleEQ applies the EQ predicate on the "user_handle" field.
func UserHandleEQ(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldUserHandle, v))
}

// UserHandleNEQ applies the NEQ predicate on the "user_handle" field.
func UserHandleNEQ(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldUserHandle, v))
}

// UserHandleIn applies the In predicate on the "user_handle" field.
func UserHandleIn(vs ...string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldUserHandle, vs...))
}

// UserHandleNotIn applies the NotIn predicate on the "user_handle" field.
func UserHandleNotIn(vs ...string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldUserHandle, vs...))
}

// UserHandleGT applies the GT predicate on the "user_handle" field.
func UserHandleGT(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldUserHandle, v))
}

// UserHandleGTE applies the GTE predicate on the "user_handle" field.
func UserHandleGTE(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldUserHandle, v))
}

// UserHandleLT applies the LT predicate on the "user_handle" field.
func UserHandleLT(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldUserHandle, v))
}

// UserHandleLTE applies the LTE predicate on the "user_handle" field.
func UserHandleLTE(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldUserHandle, v))
}

// UserHandleContains applies the Contains predicate on the "user_handle" field.
func UserHandleContains(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldContains(FieldUserHandle, v))
}

// UserHandleHasPrefix applies the HasPrefix predicate on the "user_handle" field.
func UserHandleHasPrefix(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldHasPrefix(FieldUserHandle, v))
}

// UserHandleHasSuffix applies the HasSuffix predicate on the "user_handle" field.
func UserHandleHasSuffix(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldHasSuffix(FieldUserHandle, v))
}

// UserHandleEqualFold applies the EqualFold predicate on the "user_handle" field.
func UserHandleEqualFold(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEqualFold(FieldUserHandle, v))
}

// UserHandleContainsFold applies the ContainsFold predicate on the "user_handle" field.
func UserHandleContainsFold(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldContainsFold(FieldUserHandle, v))
}

// BurnoutScoreEQ applies the EQ predicate on the "burnout_score" field.
func BurnoutScoreEQ(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldBurnoutScore, v))
}

// BurnoutScoreNEQ applies the NEQ predicate on the "burnout_score" field.
func BurnoutScoreNEQ(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldBurnoutScore, v))
}

// BurnoutScoreIn applies the In predicate on the "burnout_score" field.
func BurnoutScoreIn(vs ...float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldBurnoutScore, vs...))
}

// BurnoutScoreNotIn applies the NotIn predicate on the "burnout_score" field.
func BurnoutScoreNotIn(vs ...float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldBurnoutScore, vs...))
}

// BurnoutScoreGT applies the GT predicate on the "burnout_score" field.
func BurnoutScoreGT(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldBurnoutScore, v))
}

// BurnoutScoreGTE applies the GTE predicate on the "burnout_score" field.
func BurnoutScoreGTE(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldBurnoutScore, v))
}

// BurnoutScoreLT applies the LT predicate on the "burnout_score" field.
func BurnoutScoreLT(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldBurnoutScore, v))
}

// BurnoutScoreLTE applies the LTE predicate on the "burnout_score" field.
func BurnoutScoreLTE(v float64) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldBurnoutScore, v))
}

// CurrentStateEQ applies the EQ predicate on the "current_state" field.
func CurrentStateEQ(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldCurrentState, v))
}

// CurrentStateNEQ applies the NEQ predicate on the "current_state" field.
func CurrentStateNEQ(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldCurrentState, v))
}

// CurrentStateIn applies the In predicate on the "current_state" field.
func CurrentStateIn(vs ...string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldCurrentState, vs...))
}

// CurrentStateNotIn applies the NotIn predicate on the "current_state" field.
func CurrentStateNotIn(vs ...string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldCurrentState, vs...))
}

// CurrentStateGT applies the GT predicate on the "current_state" field.
func CurrentStateGT(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldCurrentState, v))
}

// CurrentStateGTE applies the GTE predicate on the "current_state" field.
func CurrentStateGTE(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldCurrentState, v))
}

// CurrentStateLT applies the LT predicate on the "current_state" field.
func CurrentStateLT(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldCurrentState, v))
}

// CurrentStateLTE applies the LTE predicate on the "current_state" field.
func CurrentStateLTE(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldCurrentState, v))
}

// CurrentStateContains applies the Contains predicate on the "current_state" field.
func CurrentStateContains(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldContains(FieldCurrentState, v))
}

// CurrentStateHasPrefix applies the HasPrefix predicate on the "current_state" field.
func CurrentStateHasPrefix(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldHasPrefix(FieldCurrentState, v))
}

// CurrentStateHasSuffix applies the HasSuffix predicate on the "current_state" field.
func CurrentStateHasSuffix(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldHasSuffix(FieldCurrentState, v))
}

// CurrentStateEqualFold applies the EqualFold predicate on the "current_state" field.
func CurrentStateEqualFold(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEqualFold(FieldCurrentState, v))
}

// CurrentStateContainsFold applies the ContainsFold predicate on the "current_state" field.
func CurrentStateContainsFold(v string) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldContainsFold(FieldCurrentState, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.CoachSession {
	return predicate.CoachSession(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoachSession) predicate.CoachSession {
	return predicate.CoachSession(sql.NotPredicates(p))
}
