// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ljtill/curate/ent/changerecord"
	"github.com/ljtill/curate/ent/predicate"
)

// ChangeRecordUpdate is the builder for updating ChangeRecord entities.
type ChangeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeRecordMutation
}

// Where appends a list predicates to the ChangeRecordUpdate builder.
func (_u *ChangeRecordUpdate) Where(ps ...predicate.ChangeRecord) *ChangeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContainer sets the "container" field.
func (_u *ChangeRecordUpdate) SetContainer(v string) *ChangeRecordUpdate {
	_u.mutation.SetContainer(v)
	return _u
}

// SetNillableContainer sets the "container" field if the given value is not nil.
func (_u *ChangeRecordUpdate) SetNillableContainer(v *string) *ChangeRecordUpdate {
	if v != nil {
		_u.SetContainer(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *ChangeRecordUpdate) SetDocID(v string) *ChangeRecordUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *ChangeRecordUpdate) SetNillableDocID(v *string) *ChangeRecordUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPartitionKey sets the "partition_key" field.
func (_u *ChangeRecordUpdate) SetPartitionKey(v string) *ChangeRecordUpdate {
	_u.mutation.SetPartitionKey(v)
	return _u
}

// SetNillablePartitionKey sets the "partition_key" field if the given value is not nil.
func (_u *ChangeRecordUpdate) SetNillablePartitionKey(v *string) *ChangeRecordUpdate {
	if v != nil {
		_u.SetPartitionKey(*v)
	}
	return _u
}

// SetDoc sets the "doc" field.
func (_u *ChangeRecordUpdate) SetDoc(v map[string]interface{}) *ChangeRecordUpdate {
	_u.mutation.SetDoc(v)
	return _u
}

// Mutation returns the ChangeRecordMutation object of the builder.
func (_u *ChangeRecordUpdate) Mutation() *ChangeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(changerecord.Table, changerecord.Columns, sqlgraph.NewFieldSpec(changerecord.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Container(); ok {
		_spec.SetField(changerecord.FieldContainer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(changerecord.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartitionKey(); ok {
		_spec.SetField(changerecord.FieldPartitionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doc(); ok {
		_spec.SetField(changerecord.FieldDoc, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeRecordUpdateOne is the builder for updating a single ChangeRecord entity.
type ChangeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeRecordMutation
}

// SetContainer sets the "container" field.
func (_u *ChangeRecordUpdateOne) SetContainer(v string) *ChangeRecordUpdateOne {
	_u.mutation.SetContainer(v)
	return _u
}

// SetNillableContainer sets the "container" field if the given value is not nil.
func (_u *ChangeRecordUpdateOne) SetNillableContainer(v *string) *ChangeRecordUpdateOne {
	if v != nil {
		_u.SetContainer(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *ChangeRecordUpdateOne) SetDocID(v string) *ChangeRecordUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *ChangeRecordUpdateOne) SetNillableDocID(v *string) *ChangeRecordUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetPartitionKey sets the "partition_key" field.
func (_u *ChangeRecordUpdateOne) SetPartitionKey(v string) *ChangeRecordUpdateOne {
	_u.mutation.SetPartitionKey(v)
	return _u
}

// SetNillablePartitionKey sets the "partition_key" field if the given value is not nil.
func (_u *ChangeRecordUpdateOne) SetNillablePartitionKey(v *string) *ChangeRecordUpdateOne {
	if v != nil {
		_u.SetPartitionKey(*v)
	}
	return _u
}

// SetDoc sets the "doc" field.
func (_u *ChangeRecordUpdateOne) SetDoc(v map[string]interface{}) *ChangeRecordUpdateOne {
	_u.mutation.SetDoc(v)
	return _u
}

// Mutation returns the ChangeRecordMutation object of the builder.
func (_u *ChangeRecordUpdateOne) Mutation() *ChangeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeRecordUpdate builder.
func (_u *ChangeRecordUpdateOne) Where(ps ...predicate.ChangeRecord) *ChangeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeRecordUpdateOne) Select(field string, fields ...string) *ChangeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeRecord entity.
func (_u *ChangeRecordUpdateOne) Save(ctx context.Context) (*ChangeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeRecordUpdateOne) SaveX(ctx context.Context) *ChangeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeRecordUpdateOne) sqlSave(ctx context.Context) (_node *ChangeRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(changerecord.Table, changerecord.Columns, sqlgraph.NewFieldSpec(changerecord.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changerecord.FieldID)
		for _, f := range fields {
			if !changerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changerecord.FieldID {
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
	if value, ok := _u.mutation.Container(); ok {
		_spec.SetField(changerecord.FieldContainer, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(changerecord.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartitionKey(); ok {
		_spec.SetField(changerecord.FieldPartitionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doc(); ok {
		_spec.SetField(changerecord.FieldDoc, field.TypeJSON, value)
	}
	_node = &ChangeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
