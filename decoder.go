package fix

// defaultFieldCapacity is the scratch capacity a Decoder starts with: 32
// entries, allocated once when the Decoder is built, beyond which the
// scratch slice grows into a larger allocation like any other growing Go
// slice.
const defaultFieldCapacity = 32

// Decoder parses raw FIX wire bytes into a MessageView without copying
// field values. A Decoder owns a reusable scratch slice of Field entries;
// each call to Decode logically clears and refills it, so the scratch is
// only reallocated when a message has more fields than it can hold. Each
// call to Decode still allocates the *MessageView it returns; decoding is
// not allocation-free.
//
// A Decoder is not safe for concurrent use, and a MessageView it produced
// is only valid until the next call to Decode on the same Decoder: that
// call reuses (and may reallocate) the scratch the older view borrows
// from. Decoder enforces this at runtime with a cheap generation check
// rather than silently handing back corrupted data.
type Decoder struct {
	scratch []Field
	gen     uint64
}

// NewDecoder returns a Decoder with the default scratch capacity (32
// fields).
func NewDecoder() *Decoder {
	return NewDecoderCapacity(defaultFieldCapacity)
}

// NewDecoderCapacity returns a Decoder whose scratch is pre-sized to hold
// n fields without reallocating.
func NewDecoderCapacity(n int) *Decoder {
	return &Decoder{scratch: make([]Field, 0, n)}
}

// Decode parses input into a MessageView bound to input's lifetime and to
// this Decoder's scratch. It invalidates any MessageView returned by a
// previous call to Decode on the same Decoder.
//
// Decode is strict: malformed framing is reported immediately and no
// partial view is returned. BodyLength and CheckSum are not validated
// here — some senders intentionally emit mismatched framing, and the
// caller decides whether that matters by calling ValidateBodyLength /
// ValidateCheckSum explicitly.
func (d *Decoder) Decode(input []byte) (*MessageView, error) {
	d.gen++
	d.scratch = d.scratch[:0]

	fields, err := scanFields(input, d.scratch)
	if err != nil {
		d.scratch = fields[:0]
		return nil, err
	}
	d.scratch = fields

	if len(d.scratch) == 0 || d.scratch[0].Tag != TagBeginString {
		return nil, decodeErr(ErrMissingBeginString, 0)
	}
	if len(d.scratch) < 2 || d.scratch[1].Tag != TagBodyLength {
		return nil, decodeErr(ErrMissingBodyLength, 0)
	}
	if d.scratch[len(d.scratch)-1].Tag != TagCheckSum {
		return nil, decodeErr(ErrMissingCheckSum, len(input))
	}

	return &MessageView{
		fieldView: fieldView{
			fields: d.scratch,
			dec:    d,
			gen:    d.gen,
		},
		src: input,
	}, nil
}
