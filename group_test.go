package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsMarketDataSnapshotTwoEntries(t *testing.T) {
	msg := buildMessage("FIX.4.4",
		f(35, "W"),
		f(55, "IBM"),
		f(268, "2"),
		f(269, "0"), f(270, "100.25"), f(271, "500"),
		f(269, "1"), f(270, "100.30"), f(271, "300"),
	)

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	entries, err := view.Groups(NoMDEntries)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	px0, ok := entries[0].Find(270)
	require.True(t, ok)
	assert.Equal(t, "100.25", string(px0.Value))

	px1, ok := entries[1].Find(270)
	require.True(t, ok)
	assert.Equal(t, "100.30", string(px1.Value))
}

func TestGroupsAbsentIsEmptyNotError(t *testing.T) {
	msg := buildMessage("FIX.4.4", f(35, "W"), f(55, "IBM"))

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	entries, err := view.Groups(NoMDEntries)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestGroupsZeroCountIsEmpty(t *testing.T) {
	msg := buildMessage("FIX.4.4", f(35, "W"), f(268, "0"))

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	entries, err := view.Groups(NoMDEntries)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestGroupsCountMismatch(t *testing.T) {
	msg := buildMessage("FIX.4.4",
		f(35, "W"),
		f(268, "3"),
		f(269, "0"), f(270, "100.25"),
		f(269, "1"), f(270, "100.30"),
	)

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	_, err = view.Groups(NoMDEntries)
	var ge *GroupError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrGroupCountMismatch, ge.Code)
	assert.Equal(t, 3, ge.Declared)
	assert.Equal(t, 2, ge.Found)
}

func TestGroupsMissingDelimiter(t *testing.T) {
	msg := buildMessage("FIX.4.4",
		f(35, "W"),
		f(268, "1"),
		f(270, "100.25"), // 270 instead of the delimiter tag 269
	)

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	_, err = view.Groups(NoMDEntries)
	var ge *GroupError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrMissingGroupDelimiter, ge.Code)
}

func TestGroupsMalformedCount(t *testing.T) {
	msg := buildMessage("FIX.4.4", f(35, "W"), f(268, "not-a-number"))

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	_, err = view.Groups(NoMDEntries)
	var ge *GroupError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrMalformedGroupCount, ge.Code)
}

func TestGroupsNestedPartyIDs(t *testing.T) {
	msg := buildMessage("FIX.4.4",
		f(35, "D"),
		f(453, "1"),
		f(448, "BROKER1"), f(447, "D"), f(452, "1"),
		f(802, "2"),
		f(523, "NESTED1"), f(524, "D"),
		f(523, "NESTED2"), f(524, "D"),
	)

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	parties, err := view.Groups(NoPartyIDs)
	require.NoError(t, err)
	require.Len(t, parties, 1)

	id, ok := parties[0].Find(448)
	require.True(t, ok)
	assert.Equal(t, "BROKER1", string(id.Value))

	nested, err := parties[0].Groups(NoNestedPartyIDs)
	require.NoError(t, err)
	require.Len(t, nested, 2)

	n0, ok := nested[0].Find(523)
	require.True(t, ok)
	assert.Equal(t, "NESTED1", string(n0.Value))

	n1, ok := nested[1].Find(523)
	require.True(t, ok)
	assert.Equal(t, "NESTED2", string(n1.Value))
}

func TestGroupViewFieldsDoNotLeakBeyondInstance(t *testing.T) {
	msg := buildMessage("FIX.4.4",
		f(35, "W"),
		f(268, "1"),
		f(269, "0"), f(270, "100.25"),
		f(58, "trailer, not part of the group"),
	)

	dec := NewDecoder()
	view, err := dec.Decode(msg)
	require.NoError(t, err)

	entries, err := view.Groups(NoMDEntries)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, ok := entries[0].Find(58)
	assert.False(t, ok, "a non-member tag must terminate the group instance")
}
