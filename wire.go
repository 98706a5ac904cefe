package fix

import (
	"fmt"
	"strconv"
)

// tagDigits returns the ASCII decimal digits of tag, without allocating:
// it writes into a small stack buffer and returns a slice of it.
func tagDigits(tag Tag) []byte {
	var buf [10]byte
	if tag == 0 {
		buf[len(buf)-1] = '0'
		return buf[len(buf)-1:]
	}

	i := len(buf)
	v := tag
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return buf[i:]
}

// encodedLen returns the number of wire bytes f occupies when encoded as
// "<tag>=<value>\x01".
func encodedLen(f Field) int {
	return len(tagDigits(f.Tag)) + 1 + len(f.Value) + 1
}

// addFieldChecksum folds f's encoded wire bytes into a running checksum
// accumulator, matching the byte sequence encodedLen/appendField produce.
func addFieldChecksum(sum int, f Field) int {
	for _, b := range tagDigits(f.Tag) {
		sum += int(b)
	}
	sum += int('=')
	for _, b := range f.Value {
		sum += int(b)
	}
	sum += soh
	return sum
}

// appendField appends f's wire encoding ("<tag>=<value>\x01") to dst.
func appendField(dst []byte, f Field) []byte {
	dst = append(dst, tagDigits(f.Tag)...)
	dst = append(dst, '=')
	dst = append(dst, f.Value...)
	dst = append(dst, soh)
	return dst
}

// itoa formats n as a plain decimal string.
func itoa(n int) string { return strconv.Itoa(n) }

// checksumString formats n as FIX's three-digit, zero-padded CheckSum.
func checksumString(n int) string { return fmt.Sprintf("%03d", n) }

// parseNonNegativeInt parses b as a non-negative decimal integer. It
// reports false if b is empty, contains a non-digit, or overflows int.
func parseNonNegativeInt(b []byte) (int, bool) {
	if len(b) == 0 || b[0] < '0' || b[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
