// Code generated by ent, DO NOT EDIT.

package changerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the changerecord type in the database.
	Label = "change_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContainer holds the string denoting the container field in the database.
	FieldContainer = "container"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldPartitionKey holds the string denoting the partition_key field in the database.
	FieldPartitionKey = "partition_key"
	// FieldDoc holds the string denoting the doc field in the database.
	FieldDoc = "doc"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the changerecord in the database.
	Table = "change_records"
)

// Columns holds all SQL columns for changerecord fields.
var Columns = []string{
	FieldID,
	FieldContainer,
	FieldDocID,
	FieldPartitionKey,
	FieldDoc,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChangeRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContainer orders the results by the container field.
func ByContainer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContainer, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByPartitionKey orders the results by the partition_key field.
func ByPartitionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartitionKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
