// Code generated by ent, DO NOT EDIT.

package changerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ljtill/curate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLTE(FieldID, id))
}

// Container applies equality check predicate on the "container" field. It's identical to ContainerEQ.
func Container(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldContainer, v))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldDocID, v))
}

// PartitionKey applies equality check predicate on the "partition_key" field. It's identical to PartitionKeyEQ.
func PartitionKey(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldPartitionKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ContainerEQ applies the EQ predicate on the "container" field.
func ContainerEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldContainer, v))
}

// ContainerNEQ applies the NEQ predicate on the "container" field.
func ContainerNEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNEQ(FieldContainer, v))
}

// ContainerIn applies the In predicate on the "container" field.
func ContainerIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldIn(FieldContainer, vs...))
}

// ContainerNotIn applies the NotIn predicate on the "container" field.
func ContainerNotIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNotIn(FieldContainer, vs...))
}

// ContainerGT applies the GT predicate on the "container" field.
func ContainerGT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGT(FieldContainer, v))
}

// ContainerGTE applies the GTE predicate on the "container" field.
func ContainerGTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGTE(FieldContainer, v))
}

// ContainerLT applies the LT predicate on the "container" field.
func ContainerLT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLT(FieldContainer, v))
}

// ContainerLTE applies the LTE predicate on the "container" field.
func ContainerLTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLTE(FieldContainer, v))
}

// ContainerContains applies the Contains predicate on the "container" field.
func ContainerContains(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContains(FieldContainer, v))
}

// ContainerHasPrefix applies the HasPrefix predicate on the "container" field.
func ContainerHasPrefix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasPrefix(FieldContainer, v))
}

// ContainerHasSuffix applies the HasSuffix predicate on the "container" field.
func ContainerHasSuffix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasSuffix(FieldContainer, v))
}

// ContainerEqualFold applies the EqualFold predicate on the "container" field.
func ContainerEqualFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEqualFold(FieldContainer, v))
}

// ContainerContainsFold applies the ContainsFold predicate on the "container" field.
func ContainerContainsFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContainsFold(FieldContainer, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContainsFold(FieldDocID, v))
}

// PartitionKeyEQ applies the EQ predicate on the "partition_key" field.
func PartitionKeyEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldPartitionKey, v))
}

// PartitionKeyNEQ applies the NEQ predicate on the "partition_key" field.
func PartitionKeyNEQ(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNEQ(FieldPartitionKey, v))
}

// PartitionKeyIn applies the In predicate on the "partition_key" field.
func PartitionKeyIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldIn(FieldPartitionKey, vs...))
}

// PartitionKeyNotIn applies the NotIn predicate on the "partition_key" field.
func PartitionKeyNotIn(vs ...string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNotIn(FieldPartitionKey, vs...))
}

// PartitionKeyGT applies the GT predicate on the "partition_key" field.
func PartitionKeyGT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGT(FieldPartitionKey, v))
}

// PartitionKeyGTE applies the GTE predicate on the "partition_key" field.
func PartitionKeyGTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGTE(FieldPartitionKey, v))
}

// PartitionKeyLT applies the LT predicate on the "partition_key" field.
func PartitionKeyLT(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLT(FieldPartitionKey, v))
}

// PartitionKeyLTE applies the LTE predicate on the "partition_key" field.
func PartitionKeyLTE(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLTE(FieldPartitionKey, v))
}

// PartitionKeyContains applies the Contains predicate on the "partition_key" field.
func PartitionKeyContains(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContains(FieldPartitionKey, v))
}

// PartitionKeyHasPrefix applies the HasPrefix predicate on the "partition_key" field.
func PartitionKeyHasPrefix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasPrefix(FieldPartitionKey, v))
}

// PartitionKeyHasSuffix applies the HasSuffix predicate on the "partition_key" field.
func PartitionKeyHasSuffix(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldHasSuffix(FieldPartitionKey, v))
}

// PartitionKeyEqualFold applies the EqualFold predicate on the "partition_key" field.
func PartitionKeyEqualFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEqualFold(FieldPartitionKey, v))
}

// PartitionKeyContainsFold applies the ContainsFold predicate on the "partition_key" field.
func PartitionKeyContainsFold(v string) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldContainsFold(FieldPartitionKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChangeRecord) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChangeRecord) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChangeRecord) predicate.ChangeRecord {
	return predicate.ChangeRecord(sql.NotPredicates(p))
}
