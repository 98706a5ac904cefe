// Package fix implements a zero-copy encoder/decoder for the FIX
// (Financial Information Exchange) tag=value wire protocol, covering
// FIX 4.2 and FIX 4.4 message syntax.
//
// The package is built around three pieces: a Decoder that turns a raw
// byte buffer into an indexed MessageView without copying field values,
// a group resolver that reconstructs repeating-group instances from a
// flat field stream given a GroupSpec, and an Encoder that serializes a
// MessageView back to wire bytes, optionally recomputing the BodyLength
// (tag 9) and CheckSum (tag 10) framing fields.
//
// Session state machines, order-routing semantics, persistence and the
// static catalog of all FIX tag numbers are out of scope; values are
// always opaque byte slices, and numeric interpretation is left to the
// caller.
package fix
