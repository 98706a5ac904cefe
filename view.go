package fix

import "sort"

// fieldView is the shared machinery behind MessageView and GroupView:
// ordered field iteration, a lazily built tag->position index for Find,
// and the group resolver. Both public types embed it and add only what
// differs: MessageView adds the source buffer and framing validation;
// GroupView adds nothing, since a group instance has the same ordered-
// iteration and lookup interface as a message minus framing validation.
type fieldView struct {
	fields []Field
	dec    *Decoder
	gen    uint64

	index      []int32 // positions into fields, sorted by (tag, position)
	indexBuilt bool
}

// checkLive panics if this view has outlived the Decoder call that
// produced it. Go has no compile-time borrow checker to catch this, so
// the cheapest stand-in is a runtime check: a MessageView or GroupView
// is only valid until its Decoder's next Decode call reuses the scratch
// it was built over.
func (v *fieldView) checkLive() {
	if v.dec != nil && v.dec.gen != v.gen {
		panic("fix: view used after its Decoder was reused by a later Decode call")
	}
}

func (v *fieldView) rawFields() []Field {
	v.checkLive()
	return v.fields
}

func (v *fieldView) buildIndex() {
	if v.indexBuilt {
		return
	}

	idx := make([]int32, len(v.fields))
	for i := range idx {
		idx[i] = int32(i)
	}

	// Stable sort keyed on tag alone: a stable sort preserves the
	// original (ascending-position) relative order of equal-tag
	// entries, giving a deterministic (tag, original_position)
	// ordering for Find.
	sort.SliceStable(idx, func(i, j int) bool {
		return v.fields[idx[i]].Tag < v.fields[idx[j]].Tag
	})

	v.index = idx
	v.indexBuilt = true
}

func (v *fieldView) find(tag Tag) (Field, bool) {
	v.checkLive()
	v.buildIndex()

	n := len(v.index)
	i := sort.Search(n, func(i int) bool {
		return v.fields[v.index[i]].Tag >= tag
	})
	if i == n || v.fields[v.index[i]].Tag != tag {
		return Field{}, false
	}
	return v.fields[v.index[i]], true
}

// MessageView is an ordered, read-only projection over a decoded FIX
// message: the fields in exactly the order they appeared on the wire,
// plus lookup and repeating-group resolution. A MessageView borrows from
// both the input buffer it was decoded from and its Decoder's scratch;
// see Decoder for the reuse contract.
type MessageView struct {
	fieldView
	src []byte
}

// Fields returns the message's fields in wire order. The returned slice
// is owned by the Decoder that produced this view; callers must not
// retain it past the Decoder's next Decode call.
func (v *MessageView) Fields() []Field { return v.rawFields() }

// RawFields is an alias for Fields, provided for symmetry with GroupView
// and to give callers (such as a dump/print tool) an explicit name for
// "give me the exact backing slice" that does not read as a typed
// accessor.
func (v *MessageView) RawFields() []Field { return v.rawFields() }

// Find returns the first field matching tag in wire order, or false if no
// such field is present. The first call on a given view builds a sorted
// index in O(n log n); every subsequent Find reuses it in O(log n).
func (v *MessageView) Find(tag Tag) (Field, bool) { return v.find(tag) }

// MsgType returns the value of tag 35 (MsgType), the single most common
// lookup in any FIX consumer's dispatch path. It is a named shortcut for
// Find(35), not a typed accessor: the value returned is still a raw byte
// slice.
func (v *MessageView) MsgType() ([]byte, bool) {
	f, ok := v.Find(TagMsgType)
	if !ok {
		return nil, false
	}
	return f.Value, true
}

// Groups resolves the repeating-group instances described by spec within
// this message, returning them as an ordered sequence of GroupViews. If
// the group's count tag is absent, Groups returns a nil slice and no
// error: the group is legally not present. See GroupSpec for the
// resolution algorithm.
func (v *MessageView) Groups(spec *GroupSpec) ([]GroupView, error) {
	v.checkLive()
	return resolveGroups(v.fields, spec, v.dec, v.gen)
}

// ValidateBodyLength recomputes the body length from the decoded fields
// and compares it to the declared value of tag 9. It returns a
// *MismatchError if they differ. This is never called implicitly by
// Decode: some senders intentionally emit mismatched framing, and the
// decoder is strict about syntax but agnostic about whether framing
// values are trustworthy.
func (v *MessageView) ValidateBodyLength() error {
	v.checkLive()

	declared, ok := parseNonNegativeInt(v.fields[1].Value)

	actual := 0
	for _, f := range v.fields[2 : len(v.fields)-1] {
		actual += encodedLen(f)
	}

	if !ok || declared != actual {
		return &MismatchError{
			Code:     ErrBodyLengthMismatch,
			Expected: string(v.fields[1].Value),
			Actual:   itoa(actual),
		}
	}
	return nil
}

// ValidateCheckSum recomputes the checksum from the decoded fields and
// compares it to the declared value of tag 10. It returns a
// *MismatchError if they differ.
func (v *MessageView) ValidateCheckSum() error {
	v.checkLive()

	sum := 0
	for _, f := range v.fields[:len(v.fields)-1] {
		sum = addFieldChecksum(sum, f)
	}
	actual := sum % 256

	last := v.fields[len(v.fields)-1]
	declared, ok := parseNonNegativeInt(last.Value)

	if !ok || declared != actual || len(last.Value) != 3 {
		return &MismatchError{
			Code:     ErrCheckSumMismatch,
			Expected: string(last.Value),
			Actual:   checksumString(actual),
		}
	}
	return nil
}
