package fix

// buildMessage assembles a well-formed FIX message from body fields
// (everything between BeginString and CheckSum), computing BodyLength
// and CheckSum the same way wire.go's primitives define them. It gives
// the decoder, view and group tests a ground-truth message to work
// from without depending on Encoder, which is tested separately.
func buildMessage(beginString string, body ...Field) []byte {
	begin := Field{Tag: TagBeginString, Value: []byte(beginString)}

	bodyLen := 0
	for _, f := range body {
		bodyLen += encodedLen(f)
	}
	bodyLenField := Field{Tag: TagBodyLength, Value: []byte(itoa(bodyLen))}

	var out []byte
	out = appendField(out, begin)
	out = appendField(out, bodyLenField)

	sum := 0
	sum = addFieldChecksum(sum, begin)
	sum = addFieldChecksum(sum, bodyLenField)
	for _, f := range body {
		out = appendField(out, f)
		sum = addFieldChecksum(sum, f)
	}

	checksum := Field{Tag: TagCheckSum, Value: []byte(checksumString(sum % 256))}
	out = appendField(out, checksum)

	return out
}

func f(tag Tag, value string) Field {
	return Field{Tag: tag, Value: []byte(value)}
}
