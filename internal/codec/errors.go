package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is wrapped by every EncodingError.
var ErrInvalidEncoding = errors.New("text is not valid UTF-8")

// ErrMissingName is returned by Decode when the object has no Name member.
var ErrMissingName = errors.New("missing " + FieldName + " member")

// EncodingError reports record text that cannot be represented in the
// output encoding. No output accompanies it.
type EncodingError struct {
	Field  string // member whose value failed
	Offset int    // byte offset of the first malformed sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s: invalid UTF-8 at byte %d", e.Field, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// DecodeError reports text that is not a serialized record.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode record: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
