package fix

import "strconv"

// defaultEncodeCapacity is the starting size for an Encoder's output
// buffer when the caller does not pass one of their own.
const defaultEncodeCapacity = 256

// Encoder serializes a MessageView back to FIX wire bytes, with optional
// automatic recomputation of the BodyLength (tag 9) and CheckSum (tag 10)
// framing fields. An Encoder never mutates the MessageView it is given.
//
// An Encoder owns a reusable output buffer, used whenever Encode is
// called with a nil out: like Decoder's scratch, it grows on first use
// and is then reused without reallocating, mirroring the "encoder reuses
// out's existing capacity" discipline this package applies symmetrically
// on both the decode and encode side.
type Encoder struct {
	autoBodyLength bool
	autoCheckSum   bool
	buf            []byte
}

// NewEncoder returns an Encoder with both auto-recomputations enabled.
func NewEncoder() *Encoder {
	return NewEncoderCapacity(defaultEncodeCapacity)
}

// NewEncoderCapacity returns an Encoder whose own output buffer is
// pre-sized to n bytes.
func NewEncoderCapacity(n int) *Encoder {
	return &Encoder{autoBodyLength: true, autoCheckSum: true, buf: make([]byte, 0, n)}
}

// Reset truncates the Encoder's own output buffer to zero length,
// keeping its capacity, so the next nil-out Encode call starts clean
// without reallocating.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// DisableAutoBodyLength toggles automatic recomputation of tag 9. When
// disabled, Encode copies the view's own BodyLength value verbatim.
func (e *Encoder) DisableAutoBodyLength(disable bool) { e.autoBodyLength = !disable }

// DisableAutoCheckSum toggles automatic recomputation of tag 10. When
// disabled, Encode copies the view's own CheckSum value verbatim.
func (e *Encoder) DisableAutoCheckSum(disable bool) { e.autoCheckSum = !disable }

// Encode appends view's wire-format encoding to out and returns the grown
// slice. If out is nil, Encode appends to the Encoder's own reusable
// buffer instead; successive nil-out calls keep appending to it, so use
// Reset to start that buffer over without reallocating.
func (e *Encoder) Encode(view *MessageView, out []byte) ([]byte, error) {
	view.checkLive()
	fields := view.fields
	if len(fields) < 3 {
		return out, decodeErr(ErrMissingCheckSum, -1)
	}

	usingOwnBuf := out == nil
	if usingOwnBuf {
		out = e.buf
	}

	start := len(out)

	if e.autoBodyLength {
		out = appendField(out, fields[0]) // tag 8, verbatim

		bodyLen := 0
		for _, f := range fields[2 : len(fields)-1] {
			bodyLen += encodedLen(f)
		}
		out = appendField(out, Field{Tag: TagBodyLength, Value: []byte(strconv.Itoa(bodyLen))})

		for _, f := range fields[2 : len(fields)-1] {
			out = appendField(out, f)
		}
	} else {
		for _, f := range fields[:len(fields)-1] {
			out = appendField(out, f)
		}
	}

	if e.autoCheckSum {
		sum := 0
		for _, b := range out[start:] {
			sum += int(b)
		}
		sum %= 256
		out = appendField(out, Field{Tag: TagCheckSum, Value: []byte(checksumString(sum))})
	} else {
		out = appendField(out, fields[len(fields)-1])
	}

	if usingOwnBuf {
		e.buf = out
	}

	return out, nil
}
