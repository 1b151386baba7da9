// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"math"
)

// Encoder accumulates an encoded message into an owned, growable buffer.
// Its zero value is ready to use, matching protobuf3.Buffer's usage
// pattern of a bare struct literal.
//
// buf[:pos] holds everything written so far; buf[pos:] is spare capacity
// the encoder grows into. Growth doubles the existing capacity and adds
// the exact increment requested, following the original's advance_ptr.
type Encoder struct {
	buf []byte
	pos int
}

// NewEncoder returns an Encoder with cap bytes of initial capacity
// pre-reserved. A zero Encoder{} works too; this just avoids early
// reallocation when the caller knows roughly how large the message is.
func NewEncoder(cap int) *Encoder {
	return &Encoder{buf: make([]byte, 0, cap)}
}

// grow ensures n more bytes fit after pos, returns the offset the
// caller should write at, and advances pos by n. e.buf always satisfies
// len(e.buf) == e.pos; capacity beyond that is spare growing room.
func (e *Encoder) grow(n int) int {
	start := e.pos
	need := e.pos + n
	if need > cap(e.buf) {
		newBuf := make([]byte, e.pos, cap(e.buf)*2+n)
		copy(newBuf, e.buf)
		e.buf = newBuf
	}
	e.buf = e.buf[:need]
	e.pos = need
	return start
}

// Result returns the encoded bytes and resets the encoder. The returned
// slice is never touched again by this Encoder, so no copy is needed to
// hand ownership to the caller.
func (e *Encoder) Result() []byte {
	out := e.buf[:e.pos:e.pos]
	e.buf = nil
	e.pos = 0
	return out
}

// Len reports how many bytes have been written so far.
func (e *Encoder) Len() int { return e.pos }

func (e *Encoder) putTag(fieldNum uint32, wt WireType) {
	e.putUvarintValue(Tag(fieldNum, wt))
}

func (e *Encoder) putUvarintValue(v uint64) {
	start := e.grow(maxVarintLen)
	n := putUvarint(e.buf[start:], v)
	e.pos = start + n
	e.buf = e.buf[:e.pos]
}

func (e *Encoder) putZigzagValue(v int64) {
	e.putUvarintValue(zigzagEncode(v))
}

func (e *Encoder) putFixed32Value(v uint32) {
	start := e.grow(4)
	binary.LittleEndian.PutUint32(e.buf[start:start+4], v)
}

func (e *Encoder) putFixed64Value(v uint64) {
	start := e.grow(8)
	binary.LittleEndian.PutUint64(e.buf[start:start+8], v)
}

func (e *Encoder) putBytesValue(b []byte) error {
	if len(b) > maxLength {
		return ErrLengthTooLong
	}
	e.putUvarintValue(uint64(len(b)))
	start := e.grow(len(b))
	copy(e.buf[start:], b)
	return nil
}

// startLengthDelimited reserves a fixed maxLengthCodeLen-byte slot for a
// length prefix to be filled in later by commitLengthDelimited, so the
// payload can be written before its size is known.
func (e *Encoder) startLengthDelimited() int {
	return e.grow(maxLengthCodeLen)
}

// commitLengthDelimited backpatches the length slot reserved at
// lengthPos with the number of payload bytes written since then. The
// prefix is always exactly maxLengthCodeLen bytes, with continuation
// bits forced on even when the true value needs fewer bytes -- the
// original's write_varint_at behavior.
func (e *Encoder) commitLengthDelimited(lengthPos int) error {
	n := e.pos - (lengthPos + maxLengthCodeLen)
	if n < 0 || n > maxLength {
		return ErrLengthTooLong
	}
	v := uint64(n)
	for i := 0; i < maxLengthCodeLen-1; i++ {
		e.buf[lengthPos+i] = byte(v) | 0x80
		v >>= 7
	}
	e.buf[lengthPos+maxLengthCodeLen-1] = byte(v)
	return nil
}

// Message is implemented by every generated record type. Encode appends
// the message's fields (without a length prefix); Decode consumes fields
// from d until the input is exhausted.
type Message interface {
	Encode(e *Encoder)
	Decode(d *Decoder) error
}

// Marshal encodes m into a freshly allocated byte slice.
func Marshal(m Message) []byte {
	e := NewEncoder(64)
	m.Encode(e)
	return e.Result()
}

// --- scalar Put family -----------------------------------------------

func (e *Encoder) PutInt32(fieldNum uint32, v int32) {
	e.putTag(fieldNum, VarintType)
	e.putUvarintValue(uint64(v))
}

func (e *Encoder) PutInt64(fieldNum uint32, v int64) {
	e.putTag(fieldNum, VarintType)
	e.putUvarintValue(uint64(v))
}

func (e *Encoder) PutUint32(fieldNum uint32, v uint32) {
	e.putTag(fieldNum, VarintType)
	e.putUvarintValue(uint64(v))
}

func (e *Encoder) PutUint64(fieldNum uint32, v uint64) {
	e.putTag(fieldNum, VarintType)
	e.putUvarintValue(v)
}

func (e *Encoder) PutSint32(fieldNum uint32, v int32) {
	e.putTag(fieldNum, VarintType)
	e.putZigzagValue(int64(v))
}

func (e *Encoder) PutSint64(fieldNum uint32, v int64) {
	e.putTag(fieldNum, VarintType)
	e.putZigzagValue(v)
}

func (e *Encoder) PutBool(fieldNum uint32, v bool) {
	e.putTag(fieldNum, VarintType)
	if v {
		e.putUvarintValue(1)
	} else {
		e.putUvarintValue(0)
	}
}

func (e *Encoder) PutEnum(fieldNum uint32, v int32) {
	e.PutInt32(fieldNum, v)
}

func (e *Encoder) PutFixed32(fieldNum uint32, v uint32) {
	e.putTag(fieldNum, Fixed32Type)
	e.putFixed32Value(v)
}

func (e *Encoder) PutFixed64(fieldNum uint32, v uint64) {
	e.putTag(fieldNum, Fixed64Type)
	e.putFixed64Value(v)
}

func (e *Encoder) PutSfixed32(fieldNum uint32, v int32) {
	e.putTag(fieldNum, Fixed32Type)
	e.putFixed32Value(uint32(v))
}

func (e *Encoder) PutSfixed64(fieldNum uint32, v int64) {
	e.putTag(fieldNum, Fixed64Type)
	e.putFixed64Value(uint64(v))
}

func (e *Encoder) PutFloat(fieldNum uint32, v float32) {
	e.putTag(fieldNum, Fixed32Type)
	e.putFixed32Value(math.Float32bits(v))
}

func (e *Encoder) PutDouble(fieldNum uint32, v float64) {
	e.putTag(fieldNum, Fixed64Type)
	e.putFixed64Value(math.Float64bits(v))
}

func (e *Encoder) PutString(fieldNum uint32, v string) error {
	e.putTag(fieldNum, BytesType)
	return e.putBytesValue([]byte(v))
}

func (e *Encoder) PutBytes(fieldNum uint32, v []byte) error {
	e.putTag(fieldNum, BytesType)
	return e.putBytesValue(v)
}

func (e *Encoder) PutMessage(fieldNum uint32, m Message) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	m.Encode(e)
	return e.commitLengthDelimited(start)
}

// --- unpacked repeated family ------------------------------------------

func (e *Encoder) PutRepeatedInt32(fieldNum uint32, vs []int32) {
	for _, v := range vs {
		e.PutInt32(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedInt64(fieldNum uint32, vs []int64) {
	for _, v := range vs {
		e.PutInt64(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedUint32(fieldNum uint32, vs []uint32) {
	for _, v := range vs {
		e.PutUint32(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedUint64(fieldNum uint32, vs []uint64) {
	for _, v := range vs {
		e.PutUint64(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedSint32(fieldNum uint32, vs []int32) {
	for _, v := range vs {
		e.PutSint32(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedSint64(fieldNum uint32, vs []int64) {
	for _, v := range vs {
		e.PutSint64(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedBool(fieldNum uint32, vs []bool) {
	for _, v := range vs {
		e.PutBool(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedEnum(fieldNum uint32, vs []int32) {
	for _, v := range vs {
		e.PutEnum(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedFixed32(fieldNum uint32, vs []uint32) {
	for _, v := range vs {
		e.PutFixed32(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedFixed64(fieldNum uint32, vs []uint64) {
	for _, v := range vs {
		e.PutFixed64(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedSfixed32(fieldNum uint32, vs []int32) {
	for _, v := range vs {
		e.PutSfixed32(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedSfixed64(fieldNum uint32, vs []int64) {
	for _, v := range vs {
		e.PutSfixed64(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedFloat(fieldNum uint32, vs []float32) {
	for _, v := range vs {
		e.PutFloat(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedDouble(fieldNum uint32, vs []float64) {
	for _, v := range vs {
		e.PutDouble(fieldNum, v)
	}
}

func (e *Encoder) PutRepeatedString(fieldNum uint32, vs []string) error {
	for _, v := range vs {
		if err := e.PutString(fieldNum, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) PutRepeatedBytes(fieldNum uint32, vs [][]byte) error {
	for _, v := range vs {
		if err := e.PutBytes(fieldNum, v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) PutRepeatedMessage(fieldNum uint32, vs []Message) error {
	for _, v := range vs {
		if err := e.PutMessage(fieldNum, v); err != nil {
			return err
		}
	}
	return nil
}

// --- packed repeated family (scalar, non-string/bytes/message types only) --

// PutPackedInt32 builds the payload first so its length prefix is written
// as a minimal varint rather than a backpatched maxLengthCodeLen slot.
func (e *Encoder) PutPackedInt32(fieldNum uint32, vs []int32) error {
	var payload Encoder
	for _, v := range vs {
		payload.putUvarintValue(uint64(v))
	}
	e.putTag(fieldNum, BytesType)
	return e.putBytesValue(payload.Result())
}

func (e *Encoder) PutPackedInt64(fieldNum uint32, vs []int64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putUvarintValue(uint64(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedUint32(fieldNum uint32, vs []uint32) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putUvarintValue(uint64(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedUint64(fieldNum uint32, vs []uint64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putUvarintValue(v)
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedSint32(fieldNum uint32, vs []int32) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putUvarintValue(zigzagEncode(int64(v)))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedSint64(fieldNum uint32, vs []int64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putUvarintValue(zigzagEncode(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedBool(fieldNum uint32, vs []bool) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		if v {
			e.putUvarintValue(1)
		} else {
			e.putUvarintValue(0)
		}
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedEnum(fieldNum uint32, vs []int32) error {
	return e.PutPackedInt32(fieldNum, vs)
}

func (e *Encoder) PutPackedFixed32(fieldNum uint32, vs []uint32) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed32Value(v)
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedFixed64(fieldNum uint32, vs []uint64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed64Value(v)
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedSfixed32(fieldNum uint32, vs []int32) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed32Value(uint32(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedSfixed64(fieldNum uint32, vs []int64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed64Value(uint64(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedFloat(fieldNum uint32, vs []float32) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed32Value(math.Float32bits(v))
	}
	return e.commitLengthDelimited(start)
}

func (e *Encoder) PutPackedDouble(fieldNum uint32, vs []float64) error {
	e.putTag(fieldNum, BytesType)
	start := e.startLengthDelimited()
	for _, v := range vs {
		e.putFixed64Value(math.Float64bits(v))
	}
	return e.commitLengthDelimited(start)
}

// --- map family ---------------------------------------------------------

// PutMap encodes m as a sequence of field_num-tagged two-entry
// sub-messages (key=1, value=2), the wire representation protobuf gives
// every map field. putKey/putVal are typically method expressions such
// as (*Encoder).PutString, or scalar ones such as (*Encoder).PutInt32
// wrapped in PutScalar, letting one generic function stand in for the
// per-key-type/value-type macro family the original generates in C++.
func PutMap[K comparable, V any](e *Encoder, fieldNum uint32, m map[K]V, putKey func(*Encoder, uint32, K) error, putVal func(*Encoder, uint32, V) error) error {
	for k, v := range m {
		e.putTag(fieldNum, BytesType)
		start := e.startLengthDelimited()
		if err := putKey(e, 1, k); err != nil {
			return err
		}
		if err := putVal(e, 2, v); err != nil {
			return err
		}
		if err := e.commitLengthDelimited(start); err != nil {
			return err
		}
	}
	return nil
}

// PutScalar adapts a Put function with no error return (the scalar,
// non-bytes family) to the func(*Encoder, uint32, T) error shape PutMap
// and PutMap-like helpers expect.
func PutScalar[T any](put func(*Encoder, uint32, T)) func(*Encoder, uint32, T) error {
	return func(e *Encoder, fieldNum uint32, v T) error {
		put(e, fieldNum, v)
		return nil
	}
}
