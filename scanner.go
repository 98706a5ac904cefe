package fix

import (
	"bytes"
	"math"
)

// soh is the FIX field separator (Start-of-Header, 0x01).
const soh = 0x01

// scanFields tokenizes input into (tag, value) fields delimited by SOH,
// appending them to dst and returning the grown slice.
//
// It relies on bytes.IndexByte for both SOH and '=' discovery: on every
// architecture Go supports, bytes.IndexByte dispatches to an assembly
// implementation (internal/bytealg) that scans many bytes per
// instruction, well ahead of a hand-rolled byte-at-a-time loop.
func scanFields(input []byte, dst []Field) ([]Field, error) {
	if len(input) == 0 {
		return dst, decodeErr(ErrEmptyInput, 0)
	}

	pos := 0
	for pos < len(input) {
		rest := input[pos:]
		end := bytes.IndexByte(rest, soh)
		if end == -1 {
			return dst, decodeErr(ErrMissingTrailingDelimiter, pos)
		}

		segment := rest[:end]
		eq := bytes.IndexByte(segment, '=')
		if eq == -1 {
			return dst, decodeErr(ErrMalformedField, pos)
		}
		if eq == 0 {
			return dst, decodeErr(ErrEmptyTag, pos)
		}

		tag, ok := parseTag(segment[:eq])
		if !ok {
			return dst, decodeErr(ErrInvalidTag, pos)
		}

		dst = append(dst, Field{Tag: tag, Value: segment[eq+1:]})
		pos += end + 1
	}

	return dst, nil
}

// parseTag parses b as a decimal, ASCII-digit-only tag number. It reports
// false if b is empty, contains a non-digit byte, or the value overflows
// Tag.
func parseTag(b []byte) (Tag, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
		if v > math.MaxUint32 {
			return 0, false
		}
	}
	return Tag(v), true
}
