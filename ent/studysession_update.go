// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cadence/ent/predicate"
	"github.com/abhisek/cadence/ent/schema"
	"github.com/abhisek/cadence/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdate) SetSessionID(v string) *StudySessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdate) SetStartedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStartedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdate) SetCompletedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompletedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdate) ClearCompletedAt() *StudySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StudySessionUpdate) SetDurationMs(v int64) *StudySessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDurationMs(v *int64) *StudySessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StudySessionUpdate) AddDurationMs(v int64) *StudySessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetReviews sets the "reviews" field.
func (_u *StudySessionUpdate) SetReviews(v []schema.ReviewSample) *StudySessionUpdate {
	_u.mutation.SetReviews(v)
	return _u
}

// AppendReviews appends value to the "reviews" field.
func (_u *StudySessionUpdate) AppendReviews(v []schema.ReviewSample) *StudySessionUpdate {
	_u.mutation.AppendReviews(v)
	return _u
}

// ClearReviews clears the value of the "reviews" field.
func (_u *StudySessionUpdate) ClearReviews() *StudySessionUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *StudySessionUpdate) SetObjectives(v []schema.ObjectiveSample) *StudySessionUpdate {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *StudySessionUpdate) AppendObjectives(v []schema.ObjectiveSample) *StudySessionUpdate {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *StudySessionUpdate) ClearObjectives() *StudySessionUpdate {
	_u.mutation.ClearObjectives()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *StudySessionUpdate) SetMissionID(v string) *StudySessionUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableMissionID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *StudySessionUpdate) ClearMissionID() *StudySessionUpdate {
	_u.mutation.ClearMissionID()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(studysession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(studysession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reviews(); ok {
		_spec.SetField(studysession.FieldReviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldReviews, value)
		})
	}
	if _u.mutation.ReviewsCleared() {
		_spec.ClearField(studysession.FieldReviews, field.TypeJSON)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(studysession.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(studysession.FieldObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(studysession.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(studysession.FieldMissionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdateOne) SetSessionID(v string) *StudySessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdateOne) SetStartedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStartedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdateOne) SetCompletedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdateOne) ClearCompletedAt() *StudySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *StudySessionUpdateOne) SetDurationMs(v int64) *StudySessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDurationMs(v *int64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *StudySessionUpdateOne) AddDurationMs(v int64) *StudySessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetReviews sets the "reviews" field.
func (_u *StudySessionUpdateOne) SetReviews(v []schema.ReviewSample) *StudySessionUpdateOne {
	_u.mutation.SetReviews(v)
	return _u
}

// AppendReviews appends value to the "reviews" field.
func (_u *StudySessionUpdateOne) AppendReviews(v []schema.ReviewSample) *StudySessionUpdateOne {
	_u.mutation.AppendReviews(v)
	return _u
}

// ClearReviews clears the value of the "reviews" field.
func (_u *StudySessionUpdateOne) ClearReviews() *StudySessionUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *StudySessionUpdateOne) SetObjectives(v []schema.ObjectiveSample) *StudySessionUpdateOne {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *StudySessionUpdateOne) AppendObjectives(v []schema.ObjectiveSample) *StudySessionUpdateOne {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *StudySessionUpdateOne) ClearObjectives() *StudySessionUpdateOne {
	_u.mutation.ClearObjectives()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *StudySessionUpdateOne) SetMissionID(v string) *StudySessionUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableMissionID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *StudySessionUpdateOne) ClearMissionID() *StudySessionUpdateOne {
	_u.mutation.ClearMissionID()
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(studysession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(studysession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Reviews(); ok {
		_spec.SetField(studysession.FieldReviews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReviews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldReviews, value)
		})
	}
	if _u.mutation.ReviewsCleared() {
		_spec.ClearField(studysession.FieldReviews, field.TypeJSON)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(studysession.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(studysession.FieldObjectives, field.TypeJSON)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(studysession.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(studysession.FieldMissionID, field.TypeString)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
