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
	"github.com/ljtill/curate/ent/predicate"
	"github.com/ljtill/curate/ent/revision"
)

// RevisionUpdate is the builder for updating Revision entities.
type RevisionUpdate struct {
	config
	hooks    []Hook
	mutation *RevisionMutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdate) Where(ps ...predicate.Revision) *RevisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RevisionUpdate) SetUpdatedAt(v time.Time) *RevisionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RevisionUpdate) SetDeletedAt(v time.Time) *RevisionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableDeletedAt(v *time.Time) *RevisionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RevisionUpdate) ClearDeletedAt() *RevisionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEditionID sets the "edition_id" field.
func (_u *RevisionUpdate) SetEditionID(v string) *RevisionUpdate {
	_u.mutation.SetEditionID(v)
	return _u
}

// SetNillableEditionID sets the "edition_id" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableEditionID(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetEditionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *RevisionUpdate) SetSequence(v int) *RevisionUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableSequence(v *int) *RevisionUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *RevisionUpdate) AddSequence(v int) *RevisionUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *RevisionUpdate) SetSource(v revision.Source) *RevisionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableSource(v *revision.Source) *RevisionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *RevisionUpdate) SetTriggerID(v string) *RevisionUpdate {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableTriggerID(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RevisionUpdate) SetContent(v map[string]interface{}) *RevisionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RevisionUpdate) SetSummary(v string) *RevisionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RevisionUpdate) SetNillableSummary(v *string) *RevisionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *RevisionUpdate) ClearSummary() *RevisionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdate) Mutation() *RevisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevisionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RevisionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := revision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := revision.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Revision.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RevisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(revision.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(revision.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(revision.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditionID(); ok {
		_spec.SetField(revision.FieldEditionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(revision.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(revision.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(revision.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(revision.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(revision.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(revision.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(revision.FieldSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevisionUpdateOne is the builder for updating a single Revision entity.
type RevisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevisionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RevisionUpdateOne) SetUpdatedAt(v time.Time) *RevisionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RevisionUpdateOne) SetDeletedAt(v time.Time) *RevisionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableDeletedAt(v *time.Time) *RevisionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RevisionUpdateOne) ClearDeletedAt() *RevisionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetEditionID sets the "edition_id" field.
func (_u *RevisionUpdateOne) SetEditionID(v string) *RevisionUpdateOne {
	_u.mutation.SetEditionID(v)
	return _u
}

// SetNillableEditionID sets the "edition_id" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableEditionID(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetEditionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *RevisionUpdateOne) SetSequence(v int) *RevisionUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableSequence(v *int) *RevisionUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *RevisionUpdateOne) AddSequence(v int) *RevisionUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *RevisionUpdateOne) SetSource(v revision.Source) *RevisionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableSource(v *revision.Source) *RevisionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *RevisionUpdateOne) SetTriggerID(v string) *RevisionUpdateOne {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableTriggerID(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *RevisionUpdateOne) SetContent(v map[string]interface{}) *RevisionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RevisionUpdateOne) SetSummary(v string) *RevisionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RevisionUpdateOne) SetNillableSummary(v *string) *RevisionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *RevisionUpdateOne) ClearSummary() *RevisionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the RevisionMutation object of the builder.
func (_u *RevisionUpdateOne) Mutation() *RevisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RevisionUpdate builder.
func (_u *RevisionUpdateOne) Where(ps ...predicate.Revision) *RevisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevisionUpdateOne) Select(field string, fields ...string) *RevisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Revision entity.
func (_u *RevisionUpdateOne) Save(ctx context.Context) (*Revision, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevisionUpdateOne) SaveX(ctx context.Context) *Revision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RevisionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := revision.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevisionUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := revision.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Revision.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RevisionUpdateOne) sqlSave(ctx context.Context) (_node *Revision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revision.Table, revision.Columns, sqlgraph.NewFieldSpec(revision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Revision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revision.FieldID)
		for _, f := range fields {
			if !revision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revision.FieldID {
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
		_spec.SetField(revision.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(revision.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(revision.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EditionID(); ok {
		_spec.SetField(revision.FieldEditionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(revision.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(revision.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(revision.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(revision.FieldTriggerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(revision.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(revision.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(revision.FieldSummary, field.TypeString)
	}
	_node = &Revision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
