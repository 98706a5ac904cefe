package fix

// GroupSpec describes a FIX repeating group: the tag that declares how
// many instances follow, the tag that unambiguously marks the start of
// each instance, and the set of tags that may legally appear inside one.
// A GroupSpec is immutable once built by NewGroupSpec; specific
// well-known specs live in the catalog in groupspecs.go.
type GroupSpec struct {
	CountTag     Tag
	DelimiterTag Tag
	MemberTags   []Tag
	NestedSpecs  []*GroupSpec

	members map[Tag]struct{}
}

// NewGroupSpec builds a GroupSpec. member_tags must be exhaustive, since
// any tag not in the set terminates the group even if the declared count
// has not yet been reached — but a nested spec's own
// tags (its count tag, its delimiter, and every tag nested within it, at
// any depth) are folded into the membership set automatically, so
// catalog authors only list the tags that belong directly to this
// level.
func NewGroupSpec(countTag, delimiterTag Tag, memberTags []Tag, nested ...*GroupSpec) *GroupSpec {
	members := make(map[Tag]struct{}, len(memberTags))
	for _, t := range memberTags {
		members[t] = struct{}{}
	}
	for _, ns := range nested {
		members[ns.CountTag] = struct{}{}
		members[ns.DelimiterTag] = struct{}{}
		for t := range ns.members {
			members[t] = struct{}{}
		}
	}

	return &GroupSpec{
		CountTag:     countTag,
		DelimiterTag: delimiterTag,
		MemberTags:   memberTags,
		NestedSpecs:  nested,
		members:      members,
	}
}

func (s *GroupSpec) isMember(t Tag) bool {
	_, ok := s.members[t]
	return ok
}

// GroupView is a contiguous subrange of a MessageView's fields,
// presenting the same ordered-iteration, lookup and nested-group
// interface as MessageView, minus framing validation (a group instance
// has no BeginString/BodyLength/CheckSum of its own).
type GroupView struct {
	fieldView
}

// Fields returns the instance's fields in wire order.
func (v *GroupView) Fields() []Field { return v.rawFields() }

// RawFields is an alias for Fields; see MessageView.RawFields.
func (v *GroupView) RawFields() []Field { return v.rawFields() }

// Find returns the first field matching tag within this instance, or
// false if absent.
func (v *GroupView) Find(tag Tag) (Field, bool) { return v.find(tag) }

// Groups resolves a nested group described by spec within this instance.
func (v *GroupView) Groups(spec *GroupSpec) ([]GroupView, error) {
	v.checkLive()
	return resolveGroups(v.fields, spec, v.dec, v.gen)
}

// resolveGroups extracts group instances from an arbitrary enclosing
// field range: it is used both for a MessageView's top-level fields and for a
// GroupView instance's absorbed field range, since a nested group's count
// tag was already folded into its enclosing instance at outer-extraction
// time (see GroupSpec's membership set).
func resolveGroups(fields []Field, spec *GroupSpec, dec *Decoder, gen uint64) ([]GroupView, error) {
	countIdx := -1
	for i, f := range fields {
		if f.Tag == spec.CountTag {
			countIdx = i
			break
		}
	}
	if countIdx == -1 {
		// The group is legally absent.
		return nil, nil
	}

	declared, ok := parseNonNegativeInt(fields[countIdx].Value)
	if !ok {
		return nil, &GroupError{Code: ErrMalformedGroupCount}
	}
	if declared == 0 {
		return nil, nil
	}

	if countIdx+1 >= len(fields) || fields[countIdx+1].Tag != spec.DelimiterTag {
		return nil, &GroupError{Code: ErrMissingGroupDelimiter}
	}

	views := make([]GroupView, 0, declared)
	pos := countIdx + 1
	for len(views) < declared {
		if pos >= len(fields) || fields[pos].Tag != spec.DelimiterTag {
			break
		}

		start := pos
		pos++
		for pos < len(fields) {
			t := fields[pos].Tag
			if t == spec.DelimiterTag {
				break
			}
			if !spec.isMember(t) {
				break
			}
			pos++
		}

		views = append(views, GroupView{fieldView{
			fields: fields[start:pos],
			dec:    dec,
			gen:    gen,
		}})
	}

	if len(views) != declared {
		return nil, &GroupError{
			Code:     ErrGroupCountMismatch,
			Declared: declared,
			Found:    len(views),
		}
	}

	return views, nil
}
