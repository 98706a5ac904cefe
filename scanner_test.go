package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sohJoin(parts ...string) []byte {
	out := make([]byte, 0, 64)
	for _, p := range parts {
		out = append(out, p...)
		out = append(out, soh)
	}
	return out
}

func TestScanFieldsBasic(t *testing.T) {
	input := sohJoin("8=FIX.4.4", "9=5", "35=A", "10=000")

	fields, err := scanFields(input, nil)
	require.NoError(t, err)
	require.Len(t, fields, 4)

	assert.Equal(t, Tag(8), fields[0].Tag)
	assert.Equal(t, "FIX.4.4", string(fields[0].Value))
	assert.Equal(t, Tag(9), fields[1].Tag)
	assert.Equal(t, "5", string(fields[1].Value))
	assert.Equal(t, Tag(35), fields[2].Tag)
	assert.Equal(t, Tag(10), fields[3].Tag)
}

func TestScanFieldsReusesDst(t *testing.T) {
	dst := make([]Field, 0, 8)
	input := sohJoin("8=FIX.4.2", "9=0")

	fields, err := scanFields(input, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, len(fields))
	assert.Equal(t, 8, cap(fields)) // grew the passed-in slice, not a new one
}

func TestScanFieldsEmptyInput(t *testing.T) {
	_, err := scanFields(nil, nil)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrEmptyInput, de.Code)
}

func TestScanFieldsMissingTrailingDelimiter(t *testing.T) {
	input := []byte("8=FIX.4.4\x019=5")

	_, err := scanFields(input, nil)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrMissingTrailingDelimiter, de.Code)
}

func TestScanFieldsMalformedField(t *testing.T) {
	input := []byte("8FIX\x01")

	_, err := scanFields(input, nil)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrMalformedField, de.Code)
}

func TestScanFieldsEmptyTag(t *testing.T) {
	input := []byte("=5\x01")

	_, err := scanFields(input, nil)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrEmptyTag, de.Code)
}

func TestScanFieldsInvalidTag(t *testing.T) {
	for _, in := range []string{"3a=x\x01", "99999999999=x\x01"} {
		_, err := scanFields([]byte(in), nil)
		var de *DecodeError
		require.ErrorAsf(t, err, &de, "input %q", in)
		assert.Equalf(t, ErrInvalidTag, de.Code, "input %q", in)
	}
}

func TestParseTag(t *testing.T) {
	tag, ok := parseTag([]byte("268"))
	require.True(t, ok)
	assert.Equal(t, Tag(268), tag)

	_, ok = parseTag([]byte(""))
	assert.False(t, ok)

	_, ok = parseTag([]byte("12x"))
	assert.False(t, ok)
}
