package pointfile

import (
	"errors"
	"fmt"
)

// RecordError describes a record that failed to decode, with its position
// in the file.
type RecordError struct {
	Index int
	Err   error
}

// Error formats the record error with its index context.
func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e RecordError) Unwrap() error {
	return e.Err
}

// RecordErrorList is an error that wraps one or more record errors.
type RecordErrorList []RecordError

// Error returns a compact summary of the record errors.
func (l RecordErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no record errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// AsRecordErrors extracts record errors from an error returned by Decode.
func AsRecordErrors(err error) ([]RecordError, bool) {
	if err == nil {
		return nil, false
	}
	var list RecordErrorList
	if errors.As(err, &list) {
		return []RecordError(list), true
	}
	return nil, false
}
