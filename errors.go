package fix

import "fmt"

// ErrCode identifies the kind of error a decode, validate or group-resolve
// operation failed with. It is exposed so callers can switch on failure
// class without string-matching Error().
type ErrCode int

const (
	_ ErrCode = iota

	// Scanner / framing errors.
	ErrEmptyInput
	ErrMissingTrailingDelimiter
	ErrMalformedField
	ErrEmptyTag
	ErrInvalidTag

	// Structural framing errors, raised by Decode.
	ErrMissingBeginString
	ErrMissingBodyLength
	ErrMissingCheckSum

	// Validation errors, raised only by explicit validate calls.
	ErrBodyLengthMismatch
	ErrCheckSumMismatch

	// Group-resolution errors.
	ErrMalformedGroupCount
	ErrMissingGroupDelimiter
	ErrGroupCountMismatch
)

var errCodeText = map[ErrCode]string{
	ErrEmptyInput:               "empty input",
	ErrMissingTrailingDelimiter: "trailing byte is not SOH",
	ErrMalformedField:           "field has no '=' before the next SOH",
	ErrEmptyTag:                 "empty tag",
	ErrInvalidTag:               "tag is not all ASCII digits, or overflows",
	ErrMissingBeginString:       "first field is not tag 8 (BeginString)",
	ErrMissingBodyLength:        "second field is not tag 9 (BodyLength)",
	ErrMissingCheckSum:          "last field is not tag 10 (CheckSum)",
	ErrBodyLengthMismatch:       "body length mismatch",
	ErrCheckSumMismatch:         "checksum mismatch",
	ErrMalformedGroupCount:      "group count tag value is not a non-negative integer",
	ErrMissingGroupDelimiter:    "field after the count tag is not the delimiter tag",
	ErrGroupCountMismatch:       "declared group count does not match instances found",
}

func (c ErrCode) String() string {
	if s, ok := errCodeText[c]; ok {
		return s
	}
	return "unknown error"
}

// DecodeError is returned by Decoder.Decode and by the scanner it drives.
// Offset is the byte offset into the input at which the error was
// detected, where known; it is -1 otherwise.
type DecodeError struct {
	Code   ErrCode
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("fix: decode error at offset %d: %s", e.Offset, e.Code)
	}
	return fmt.Sprintf("fix: decode error: %s", e.Code)
}

func decodeErr(code ErrCode, offset int) *DecodeError {
	return &DecodeError{Code: code, Offset: offset}
}

// MismatchError reports a framing validation failure: the value that was
// present in the message against the value the codec computed.
type MismatchError struct {
	Code     ErrCode
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("fix: %s: expected %s, got %s", e.Code, e.Expected, e.Actual)
}

// GroupError is returned by MessageView.Groups and GroupView.Groups.
type GroupError struct {
	Code     ErrCode
	Declared int
	Found    int
}

func (e *GroupError) Error() string {
	switch e.Code {
	case ErrGroupCountMismatch:
		return fmt.Sprintf("fix: group count mismatch: declared %d, found %d", e.Declared, e.Found)
	default:
		return fmt.Sprintf("fix: %s", e.Code)
	}
}
