// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ljtill/curate/ent/changerecord"
)

// ChangeRecordCreate is the builder for creating a ChangeRecord entity.
type ChangeRecordCreate struct {
	config
	mutation *ChangeRecordMutation
	hooks    []Hook
}

// SetContainer sets the "container" field.
func (_c *ChangeRecordCreate) SetContainer(v string) *ChangeRecordCreate {
	_c.mutation.SetContainer(v)
	return _c
}

// SetDocID sets the "doc_id" field.
func (_c *ChangeRecordCreate) SetDocID(v string) *ChangeRecordCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetPartitionKey sets the "partition_key" field.
func (_c *ChangeRecordCreate) SetPartitionKey(v string) *ChangeRecordCreate {
	_c.mutation.SetPartitionKey(v)
	return _c
}

// SetDoc sets the "doc" field.
func (_c *ChangeRecordCreate) SetDoc(v map[string]interface{}) *ChangeRecordCreate {
	_c.mutation.SetDoc(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChangeRecordCreate) SetCreatedAt(v time.Time) *ChangeRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChangeRecordCreate) SetNillableCreatedAt(v *time.Time) *ChangeRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangeRecordCreate) SetID(v int64) *ChangeRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChangeRecordMutation object of the builder.
func (_c *ChangeRecordCreate) Mutation() *ChangeRecordMutation {
	return _c.mutation
}

// Save creates the ChangeRecord in the database.
func (_c *ChangeRecordCreate) Save(ctx context.Context) (*ChangeRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeRecordCreate) SaveX(ctx context.Context) *ChangeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := changerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeRecordCreate) check() error {
	if _, ok := _c.mutation.Container(); !ok {
		return &ValidationError{Name: "container", err: errors.New(`ent: missing required field "ChangeRecord.container"`)}
	}
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "ChangeRecord.doc_id"`)}
	}
	if _, ok := _c.mutation.PartitionKey(); !ok {
		return &ValidationError{Name: "partition_key", err: errors.New(`ent: missing required field "ChangeRecord.partition_key"`)}
	}
	if _, ok := _c.mutation.Doc(); !ok {
		return &ValidationError{Name: "doc", err: errors.New(`ent: missing required field "ChangeRecord.doc"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChangeRecord.created_at"`)}
	}
	return nil
}

func (_c *ChangeRecordCreate) sqlSave(ctx context.Context) (*ChangeRecord, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangeRecordCreate) createSpec() (*ChangeRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changerecord.Table, sqlgraph.NewFieldSpec(changerecord.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Container(); ok {
		_spec.SetField(changerecord.FieldContainer, field.TypeString, value)
		_node.Container = value
	}
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(changerecord.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.PartitionKey(); ok {
		_spec.SetField(changerecord.FieldPartitionKey, field.TypeString, value)
		_node.PartitionKey = value
	}
	if value, ok := _c.mutation.Doc(); ok {
		_spec.SetField(changerecord.FieldDoc, field.TypeJSON, value)
		_node.Doc = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(changerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChangeRecordCreateBulk is the builder for creating many ChangeRecord entities in bulk.
type ChangeRecordCreateBulk struct {
	config
	err      error
	builders []*ChangeRecordCreate
}

// Save creates the ChangeRecord entities in the database.
func (_c *ChangeRecordCreateBulk) Save(ctx context.Context) ([]*ChangeRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeRecordMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *ChangeRecordCreateBulk) SaveX(ctx context.Context) []*ChangeRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
