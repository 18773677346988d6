// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ljtill/curate/ent/changerecord"
)

// ChangeRecord is the model entity for the ChangeRecord schema.
type ChangeRecord struct {
	config `json:"-"`
	// ID of the ent.
	// bigserial; assigned by the database
	ID int64 `json:"id,omitempty"`
	// Container holds the value of the "container" field.
	Container string `json:"container,omitempty"`
	// DocID holds the value of the "doc_id" field.
	DocID string `json:"doc_id,omitempty"`
	// PartitionKey holds the value of the "partition_key" field.
	PartitionKey string `json:"partition_key,omitempty"`
	// Document snapshot at write time
	Doc map[string]interface{} `json:"doc,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChangeRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case changerecord.FieldDoc:
			values[i] = new([]byte)
		case changerecord.FieldID:
			values[i] = new(sql.NullInt64)
		case changerecord.FieldContainer, changerecord.FieldDocID, changerecord.FieldPartitionKey:
			values[i] = new(sql.NullString)
		case changerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChangeRecord fields.
func (_m *ChangeRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case changerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case changerecord.FieldContainer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field container", values[i])
			} else if value.Valid {
				_m.Container = value.String
			}
		case changerecord.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case changerecord.FieldPartitionKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field partition_key", values[i])
			} else if value.Valid {
				_m.PartitionKey = value.String
			}
		case changerecord.FieldDoc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field doc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Doc); err != nil {
					return fmt.Errorf("unmarshal field doc: %w", err)
				}
			}
		case changerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChangeRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ChangeRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChangeRecord.
// Note that you need to call ChangeRecord.Unwrap() before calling this method if this ChangeRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChangeRecord) Update() *ChangeRecordUpdateOne {
	return NewChangeRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChangeRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChangeRecord) Unwrap() *ChangeRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChangeRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChangeRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ChangeRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("container=")
	builder.WriteString(_m.Container)
	builder.WriteString(", ")
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("partition_key=")
	builder.WriteString(_m.PartitionKey)
	builder.WriteString(", ")
	builder.WriteString("doc=")
	builder.WriteString(fmt.Sprintf("%v", _m.Doc))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChangeRecords is a parsable slice of ChangeRecord.
type ChangeRecords []*ChangeRecord
