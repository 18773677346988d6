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
	"github.com/ljtill/curate/ent/edition"
	"github.com/ljtill/curate/ent/predicate"
)

// EditionUpdate is the builder for updating Edition entities.
type EditionUpdate struct {
	config
	hooks    []Hook
	mutation *EditionMutation
}

// Where appends a list predicates to the EditionUpdate builder.
func (_u *EditionUpdate) Where(ps ...predicate.Edition) *EditionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EditionUpdate) SetUpdatedAt(v time.Time) *EditionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EditionUpdate) SetDeletedAt(v time.Time) *EditionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EditionUpdate) SetNillableDeletedAt(v *time.Time) *EditionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EditionUpdate) ClearDeletedAt() *EditionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EditionUpdate) SetStatus(v edition.Status) *EditionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EditionUpdate) SetNillableStatus(v *edition.Status) *EditionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EditionUpdate) SetContent(v map[string]interface{}) *EditionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EditionUpdate) ClearContent() *EditionUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetLinkIds sets the "link_ids" field.
func (_u *EditionUpdate) SetLinkIds(v []string) *EditionUpdate {
	_u.mutation.SetLinkIds(v)
	return _u
}

// AppendLinkIds appends value to the "link_ids" field.
func (_u *EditionUpdate) AppendLinkIds(v []string) *EditionUpdate {
	_u.mutation.AppendLinkIds(v)
	return _u
}

// ClearLinkIds clears the value of the "link_ids" field.
func (_u *EditionUpdate) ClearLinkIds() *EditionUpdate {
	_u.mutation.ClearLinkIds()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EditionUpdate) SetPublishedAt(v time.Time) *EditionUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EditionUpdate) SetNillablePublishedAt(v *time.Time) *EditionUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EditionUpdate) ClearPublishedAt() *EditionUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the EditionMutation object of the builder.
func (_u *EditionUpdate) Mutation() *EditionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EditionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EditionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EditionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := edition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := edition.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Edition.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EditionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(edition.Table, edition.Columns, sqlgraph.NewFieldSpec(edition.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(edition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(edition.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(edition.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(edition.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(edition.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(edition.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.LinkIds(); ok {
		_spec.SetField(edition.FieldLinkIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, edition.FieldLinkIds, value)
		})
	}
	if _u.mutation.LinkIdsCleared() {
		_spec.ClearField(edition.FieldLinkIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(edition.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(edition.FieldPublishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{edition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EditionUpdateOne is the builder for updating a single Edition entity.
type EditionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EditionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EditionUpdateOne) SetUpdatedAt(v time.Time) *EditionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *EditionUpdateOne) SetDeletedAt(v time.Time) *EditionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *EditionUpdateOne) SetNillableDeletedAt(v *time.Time) *EditionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *EditionUpdateOne) ClearDeletedAt() *EditionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *EditionUpdateOne) SetStatus(v edition.Status) *EditionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EditionUpdateOne) SetNillableStatus(v *edition.Status) *EditionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *EditionUpdateOne) SetContent(v map[string]interface{}) *EditionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *EditionUpdateOne) ClearContent() *EditionUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetLinkIds sets the "link_ids" field.
func (_u *EditionUpdateOne) SetLinkIds(v []string) *EditionUpdateOne {
	_u.mutation.SetLinkIds(v)
	return _u
}

// AppendLinkIds appends value to the "link_ids" field.
func (_u *EditionUpdateOne) AppendLinkIds(v []string) *EditionUpdateOne {
	_u.mutation.AppendLinkIds(v)
	return _u
}

// ClearLinkIds clears the value of the "link_ids" field.
func (_u *EditionUpdateOne) ClearLinkIds() *EditionUpdateOne {
	_u.mutation.ClearLinkIds()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EditionUpdateOne) SetPublishedAt(v time.Time) *EditionUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EditionUpdateOne) SetNillablePublishedAt(v *time.Time) *EditionUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EditionUpdateOne) ClearPublishedAt() *EditionUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// Mutation returns the EditionMutation object of the builder.
func (_u *EditionUpdateOne) Mutation() *EditionMutation {
	return _u.mutation
}

// Where appends a list predicates to the EditionUpdate builder.
func (_u *EditionUpdateOne) Where(ps ...predicate.Edition) *EditionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EditionUpdateOne) Select(field string, fields ...string) *EditionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Edition entity.
func (_u *EditionUpdateOne) Save(ctx context.Context) (*Edition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EditionUpdateOne) SaveX(ctx context.Context) *Edition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EditionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EditionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EditionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := edition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EditionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := edition.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Edition.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EditionUpdateOne) sqlSave(ctx context.Context) (_node *Edition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(edition.Table, edition.Columns, sqlgraph.NewFieldSpec(edition.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Edition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, edition.FieldID)
		for _, f := range fields {
			if !edition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != edition.FieldID {
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
		_spec.SetField(edition.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(edition.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(edition.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(edition.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(edition.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(edition.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.LinkIds(); ok {
		_spec.SetField(edition.FieldLinkIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLinkIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, edition.FieldLinkIds, value)
		})
	}
	if _u.mutation.LinkIdsCleared() {
		_spec.ClearField(edition.FieldLinkIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(edition.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(edition.FieldPublishedAt, field.TypeTime)
	}
	_node = &Edition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{edition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
