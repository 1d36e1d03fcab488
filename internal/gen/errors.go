package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecords is returned when a package has no type selected for
	// generation.
	ErrNoRecords = errors.New("no record types selected")
	// ErrTypeNotFound is returned when a -type name does not exist.
	ErrTypeNotFound = errors.New("type not found")
	// ErrNotStruct is returned when a selected type is not a struct.
	ErrNotStruct = errors.New("not a struct type")
	// ErrGenericRecord is returned for record types with type parameters.
	ErrGenericRecord = errors.New("generic record types are not supported")
	// ErrEmbeddedField is returned for records with embedded fields.
	ErrEmbeddedField = errors.New("embedded fields are not supported")
	// ErrReservedField is returned for a field whose name is also the name
	// of a method generated on the view types.
	ErrReservedField = errors.New("field name collides with a generated method")
	// ErrNotComparable is returned when Equal is requested for a field type
	// that is neither comparable nor defines Equal.
	ErrNotComparable = errors.New("field type is not comparable and has no Equal method")
	// ErrUnknownDerive is returned for an unknown capability name.
	ErrUnknownDerive = errors.New("unknown derive")
)

// FieldError ties a record validation failure to the offending field.
//
// The original underlying error can be accessed via errors.Unwrap.
type FieldError struct {
	Record string
	Field  string
	cause  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }
