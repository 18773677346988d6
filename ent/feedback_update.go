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
	"github.com/ljtill/curate/ent/feedback"
	"github.com/ljtill/curate/ent/predicate"
)

// FeedbackUpdate is the builder for updating Feedback entities.
type FeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackMutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdate) Where(ps ...predicate.Feedback) *FeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackUpdate) SetUpdatedAt(v time.Time) *FeedbackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FeedbackUpdate) SetDeletedAt(v time.Time) *FeedbackUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableDeletedAt(v *time.Time) *FeedbackUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FeedbackUpdate) ClearDeletedAt() *FeedbackUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEditionID sets the "edition_id" field.
func (_u *FeedbackUpdate) SetEditionID(v string) *FeedbackUpdate {
	_u.mutation.SetEditionID(v)
	return _u
}

// SetNillableEditionID sets the "edition_id" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableEditionID(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetEditionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *FeedbackUpdate) SetSection(v string) *FeedbackUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableSection(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdate) SetComment(v string) *FeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableComment(v *string) *FeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *FeedbackUpdate) SetResolved(v bool) *FeedbackUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableResolved(v *bool) *FeedbackUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetLearnFromFeedback sets the "learn_from_feedback" field.
func (_u *FeedbackUpdate) SetLearnFromFeedback(v bool) *FeedbackUpdate {
	_u.mutation.SetLearnFromFeedback(v)
	return _u
}

// SetNillableLearnFromFeedback sets the "learn_from_feedback" field if the given value is not nil.
func (_u *FeedbackUpdate) SetNillableLearnFromFeedback(v *bool) *FeedbackUpdate {
	if v != nil {
		_u.SetLearnFromFeedback(*v)
	}
	return _u
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdate) Mutation() *FeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(feedback.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(feedback.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditionID(); ok {
		_spec.SetField(feedback.FieldEditionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(feedback.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(feedback.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LearnFromFeedback(); ok {
		_spec.SetField(feedback.FieldLearnFromFeedback, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackUpdateOne is the builder for updating a single Feedback entity.
type FeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FeedbackUpdateOne) SetUpdatedAt(v time.Time) *FeedbackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *FeedbackUpdateOne) SetDeletedAt(v time.Time) *FeedbackUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableDeletedAt(v *time.Time) *FeedbackUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *FeedbackUpdateOne) ClearDeletedAt() *FeedbackUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEditionID sets the "edition_id" field.
func (_u *FeedbackUpdateOne) SetEditionID(v string) *FeedbackUpdateOne {
	_u.mutation.SetEditionID(v)
	return _u
}

// SetNillableEditionID sets the "edition_id" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableEditionID(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetEditionID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *FeedbackUpdateOne) SetSection(v string) *FeedbackUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableSection(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackUpdateOne) SetComment(v string) *FeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableComment(v *string) *FeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *FeedbackUpdateOne) SetResolved(v bool) *FeedbackUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableResolved(v *bool) *FeedbackUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetLearnFromFeedback sets the "learn_from_feedback" field.
func (_u *FeedbackUpdateOne) SetLearnFromFeedback(v bool) *FeedbackUpdateOne {
	_u.mutation.SetLearnFromFeedback(v)
	return _u
}

// SetNillableLearnFromFeedback sets the "learn_from_feedback" field if the given value is not nil.
func (_u *FeedbackUpdateOne) SetNillableLearnFromFeedback(v *bool) *FeedbackUpdateOne {
	if v != nil {
		_u.SetLearnFromFeedback(*v)
	}
	return _u
}

// Mutation returns the FeedbackMutation object of the builder.
func (_u *FeedbackUpdateOne) Mutation() *FeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackUpdate builder.
func (_u *FeedbackUpdateOne) Where(ps ...predicate.Feedback) *FeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackUpdateOne) Select(field string, fields ...string) *FeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feedback entity.
func (_u *FeedbackUpdateOne) Save(ctx context.Context) (*Feedback, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackUpdateOne) SaveX(ctx context.Context) *Feedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FeedbackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := feedback.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *FeedbackUpdateOne) sqlSave(ctx context.Context) (_node *Feedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(feedback.Table, feedback.Columns, sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedback.FieldID)
		for _, f := range fields {
			if !feedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedback.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(feedback.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(feedback.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(feedback.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditionID(); ok {
		_spec.SetField(feedback.FieldEditionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(feedback.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedback.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(feedback.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LearnFromFeedback(); ok {
		_spec.SetField(feedback.FieldLearnFromFeedback, field.TypeBool, value)
	}
	_node = &Feedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
