// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"math"
)

// Decoder walks an encoded message field by field. FieldNum and WireType
// describe the field most recently returned by Next; generated Decode
// methods switch on FieldNum directly, the same shape the original's
// pb.field_num/pb.wire_type give generated C++ decode loops.
type Decoder struct {
	buf      []byte
	pos      int
	FieldNum uint32
	WireType WireType
}

// NewDecoder returns a Decoder over buf. buf is not copied and must stay
// unchanged while the Decoder reads it; GetString and GetBytes return
// copies, so decoded values do not alias buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Unmarshal decodes buf's fields into m.
func Unmarshal(buf []byte, m Message) error {
	return m.Decode(NewDecoder(buf))
}

func (d *Decoder) eof() bool { return d.pos >= len(d.buf) }

func (d *Decoder) remaining() []byte { return d.buf[d.pos:] }

// Next advances to the next field, populating FieldNum and WireType. It
// returns false (with a nil error) once the input is exhausted.
func (d *Decoder) Next() (bool, error) {
	if d.eof() {
		return false, nil
	}
	tag, n, err := consumeUvarint(d.remaining())
	if err != nil {
		return false, err
	}
	fieldNum, wt, ok := splitTag(tag)
	if !ok {
		return false, ErrInvalidFieldNumber
	}
	d.pos += n
	d.FieldNum = fieldNum
	d.WireType = wt
	return true, nil
}

func (d *Decoder) readLength() (int, error) {
	v, n, err := consumeUvarint(d.remaining())
	if err != nil {
		return 0, err
	}
	if v > maxLength {
		return 0, ErrLengthTooLong
	}
	d.pos += n
	length := int(v)
	if length > len(d.buf)-d.pos {
		return 0, ErrUnexpectedEOF
	}
	return length, nil
}

// subDecoder carves out a nested Decoder over the next length-delimited
// payload and advances past it.
func (d *Decoder) subDecoder() (*Decoder, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	start := d.pos
	d.pos += n
	return &Decoder{buf: d.buf[start : start+n]}, nil
}

// SkipField consumes and discards the value for the field FieldNum/
// WireType currently describe. Groups are rejected rather than skipped,
// per the original's WireType enum no longer supporting them.
func (d *Decoder) SkipField() error {
	switch d.WireType {
	case VarintType:
		_, n, err := consumeUvarint(d.remaining())
		if err != nil {
			return err
		}
		d.pos += n
		return nil
	case Fixed32Type:
		if len(d.remaining()) < 4 {
			return ErrUnexpectedEOF
		}
		d.pos += 4
		return nil
	case Fixed64Type:
		if len(d.remaining()) < 8 {
			return ErrUnexpectedEOF
		}
		d.pos += 8
		return nil
	case BytesType:
		n, err := d.readLength()
		if err != nil {
			return err
		}
		d.pos += n
		return nil
	default:
		return ErrUnsupportedWireType
	}
}

// --- cross-wire-type tolerant readers -----------------------------------

// parseIntegerValue reads the current field as an unsigned 64-bit value
// regardless of whether it arrived as VARINT, FIXED32, or FIXED64,
// matching parse_integer_value's wire-type tolerance.
func (d *Decoder) parseIntegerValue() (uint64, error) {
	switch d.WireType {
	case VarintType:
		v, n, err := consumeUvarint(d.remaining())
		if err != nil {
			return 0, err
		}
		d.pos += n
		return v, nil
	case Fixed32Type:
		if len(d.remaining()) < 4 {
			return 0, ErrUnexpectedEOF
		}
		v := binary.LittleEndian.Uint32(d.remaining())
		d.pos += 4
		return uint64(v), nil
	case Fixed64Type:
		if len(d.remaining()) < 8 {
			return 0, ErrUnexpectedEOF
		}
		v := binary.LittleEndian.Uint64(d.remaining())
		d.pos += 8
		return v, nil
	default:
		return 0, ErrWireTypeMismatch
	}
}

// parseZigzagValue reads the current field as a signed 64-bit value. A
// VARINT payload is zigzag-decoded; FIXED32/FIXED64 payloads are taken
// as already-signed (no zigzag un-shuffling), matching parse_zigzag_value.
func (d *Decoder) parseZigzagValue() (int64, error) {
	switch d.WireType {
	case VarintType:
		v, n, err := consumeUvarint(d.remaining())
		if err != nil {
			return 0, err
		}
		d.pos += n
		return zigzagDecode(v), nil
	case Fixed32Type:
		if len(d.remaining()) < 4 {
			return 0, ErrUnexpectedEOF
		}
		v := int32(binary.LittleEndian.Uint32(d.remaining()))
		d.pos += 4
		return int64(v), nil
	case Fixed64Type:
		if len(d.remaining()) < 8 {
			return 0, ErrUnexpectedEOF
		}
		v := int64(binary.LittleEndian.Uint64(d.remaining()))
		d.pos += 8
		return v, nil
	default:
		return 0, ErrWireTypeMismatch
	}
}

func (d *Decoder) parseFloat32Value() (float32, error) {
	switch d.WireType {
	case Fixed32Type:
		if len(d.remaining()) < 4 {
			return 0, ErrUnexpectedEOF
		}
		v := binary.LittleEndian.Uint32(d.remaining())
		d.pos += 4
		return math.Float32frombits(v), nil
	default:
		return 0, ErrWireTypeMismatch
	}
}

func (d *Decoder) parseFloat64Value() (float64, error) {
	switch d.WireType {
	case Fixed64Type:
		if len(d.remaining()) < 8 {
			return 0, ErrUnexpectedEOF
		}
		v := binary.LittleEndian.Uint64(d.remaining())
		d.pos += 8
		return math.Float64frombits(v), nil
	default:
		return 0, ErrWireTypeMismatch
	}
}

func (d *Decoder) parseBytesValue() ([]byte, error) {
	if d.WireType != BytesType {
		return nil, ErrWireTypeMismatch
	}
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	start := d.pos
	d.pos += n
	return d.buf[start : start+n], nil
}

// --- scalar Get family ----------------------------------------------------
// Each takes an optional has pointer (nil means "don't track presence"),
// matching the original's "(FieldType *field, bool *has_field = nullptr)".

func GetInt32(d *Decoder, dst *int32, has *bool) error {
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = int32(v)
	setHas(has)
	return nil
}

func GetInt64(d *Decoder, dst *int64, has *bool) error {
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = int64(v)
	setHas(has)
	return nil
}

func GetUint32(d *Decoder, dst *uint32, has *bool) error {
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = uint32(v)
	setHas(has)
	return nil
}

func GetUint64(d *Decoder, dst *uint64, has *bool) error {
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = v
	setHas(has)
	return nil
}

func GetSint32(d *Decoder, dst *int32, has *bool) error {
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = int32(v)
	setHas(has)
	return nil
}

func GetSint64(d *Decoder, dst *int64, has *bool) error {
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = v
	setHas(has)
	return nil
}

func GetBool(d *Decoder, dst *bool, has *bool) error {
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = v != 0
	setHas(has)
	return nil
}

func GetEnum(d *Decoder, dst *int32, has *bool) error {
	return GetInt32(d, dst, has)
}

// GetFixed32 and GetFixed64 share parseIntegerValue's full VARINT/
// FIXED32/FIXED64 tolerance with GetUint32/GetUint64; the wire format
// does not distinguish uint32 from fixed32 once decoded.
func GetFixed32(d *Decoder, dst *uint32, has *bool) error {
	return GetUint32(d, dst, has)
}

func GetFixed64(d *Decoder, dst *uint64, has *bool) error {
	return GetUint64(d, dst, has)
}

func GetSfixed32(d *Decoder, dst *int32, has *bool) error {
	return GetSint32(d, dst, has)
}

func GetSfixed64(d *Decoder, dst *int64, has *bool) error {
	return GetSint64(d, dst, has)
}

func GetFloat(d *Decoder, dst *float32, has *bool) error {
	v, err := d.parseFloat32Value()
	if err != nil {
		return err
	}
	*dst = v
	setHas(has)
	return nil
}

func GetDouble(d *Decoder, dst *float64, has *bool) error {
	v, err := d.parseFloat64Value()
	if err != nil {
		return err
	}
	*dst = v
	setHas(has)
	return nil
}

func GetString(d *Decoder, dst *string, has *bool) error {
	b, err := d.parseBytesValue()
	if err != nil {
		return err
	}
	*dst = string(b)
	setHas(has)
	return nil
}

func GetBytes(d *Decoder, dst *[]byte, has *bool) error {
	b, err := d.parseBytesValue()
	if err != nil {
		return err
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	*dst = cp
	setHas(has)
	return nil
}

// GetMessage decodes the current length-delimited field into m.
func GetMessage(d *Decoder, m Message, has *bool) error {
	if d.WireType != BytesType {
		return ErrWireTypeMismatch
	}
	sub, err := d.subDecoder()
	if err != nil {
		return err
	}
	if err := m.Decode(sub); err != nil {
		return err
	}
	setHas(has)
	return nil
}

func setHas(has *bool) {
	if has != nil {
		*has = true
	}
}

// --- repeated Get family (packed-or-unpacked tolerant) --------------------
// Each occurrence is checked independently: a length-delimited occurrence
// of a packable scalar is treated as a packed run, anything else as one
// unpacked value, matching get_repeated_* in the original.

func AppendRepeatedInt32(d *Decoder, dst *[]int32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, int32(v))
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, int32(v))
	return nil
}

func AppendRepeatedInt64(d *Decoder, dst *[]int64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, int64(v))
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, int64(v))
	return nil
}

func AppendRepeatedUint32(d *Decoder, dst *[]uint32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, uint32(v))
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, uint32(v))
	return nil
}

func AppendRepeatedUint64(d *Decoder, dst *[]uint64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, v)
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedSint32(d *Decoder, dst *[]int32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, int32(zigzagDecode(v)))
		}
		return nil
	}
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, int32(v))
	return nil
}

func AppendRepeatedSint64(d *Decoder, dst *[]int64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, zigzagDecode(v))
		}
		return nil
	}
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedBool(d *Decoder, dst *[]bool) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			v, n, err := consumeUvarint(sub.remaining())
			if err != nil {
				return err
			}
			sub.pos += n
			*dst = append(*dst, v != 0)
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, v != 0)
	return nil
}

func AppendRepeatedEnum(d *Decoder, dst *[]int32) error {
	return AppendRepeatedInt32(d, dst)
}

func AppendRepeatedFixed32(d *Decoder, dst *[]uint32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 4 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, binary.LittleEndian.Uint32(sub.remaining()))
			sub.pos += 4
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, uint32(v))
	return nil
}

func AppendRepeatedFixed64(d *Decoder, dst *[]uint64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 8 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, binary.LittleEndian.Uint64(sub.remaining()))
			sub.pos += 8
		}
		return nil
	}
	v, err := d.parseIntegerValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedSfixed32(d *Decoder, dst *[]int32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 4 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, int32(binary.LittleEndian.Uint32(sub.remaining())))
			sub.pos += 4
		}
		return nil
	}
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, int32(v))
	return nil
}

func AppendRepeatedSfixed64(d *Decoder, dst *[]int64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 8 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, int64(binary.LittleEndian.Uint64(sub.remaining())))
			sub.pos += 8
		}
		return nil
	}
	v, err := d.parseZigzagValue()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedFloat(d *Decoder, dst *[]float32) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 4 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, math.Float32frombits(binary.LittleEndian.Uint32(sub.remaining())))
			sub.pos += 4
		}
		return nil
	}
	v, err := d.parseFloat32Value()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedDouble(d *Decoder, dst *[]float64) error {
	if d.WireType == BytesType {
		sub, err := d.subDecoder()
		if err != nil {
			return err
		}
		for !sub.eof() {
			if len(sub.remaining()) < 8 {
				return ErrUnexpectedEOF
			}
			*dst = append(*dst, math.Float64frombits(binary.LittleEndian.Uint64(sub.remaining())))
			sub.pos += 8
		}
		return nil
	}
	v, err := d.parseFloat64Value()
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedString(d *Decoder, dst *[]string) error {
	var v string
	if err := GetString(d, &v, nil); err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func AppendRepeatedBytes(d *Decoder, dst *[][]byte) error {
	var v []byte
	if err := GetBytes(d, &v, nil); err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

// AppendRepeatedMessage decodes one occurrence of a repeated message
// field by constructing a fresh element with newElem and appending it.
func AppendRepeatedMessage[T Message](d *Decoder, dst *[]T, newElem func() T) error {
	elem := newElem()
	if err := GetMessage(d, elem, nil); err != nil {
		return err
	}
	*dst = append(*dst, elem)
	return nil
}

// --- map family ------------------------------------------------------------

// AppendMapEntry decodes one map-entry sub-message (key field 1, value
// field 2, either order, either or both absent) and inserts it into m
// only once both key and value were observed, matching the original's
// get_map_* insert-on-both-present rule.
func AppendMapEntry[K comparable, V any](d *Decoder, m map[K]V, getKey func(*Decoder) (K, error), getVal func(*Decoder) (V, error)) error {
	if d.WireType != BytesType {
		return ErrWireTypeMismatch
	}
	sub, err := d.subDecoder()
	if err != nil {
		return err
	}
	var key K
	var val V
	var haveKey, haveVal bool
	for {
		more, err := sub.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		switch sub.FieldNum {
		case 1:
			key, err = getKey(sub)
			if err != nil {
				return err
			}
			haveKey = true
		case 2:
			val, err = getVal(sub)
			if err != nil {
				return err
			}
			haveVal = true
		default:
			if err := sub.SkipField(); err != nil {
				return err
			}
		}
	}
	if haveKey && haveVal {
		m[key] = val
	}
	return nil
}

// GetScalar adapts a Get function's (dst, has) pointer pair into the
// func(*Decoder) (T, error) shape AppendMapEntry expects.
func GetScalar[T any](get func(*Decoder, *T, *bool) error) func(*Decoder) (T, error) {
	return func(d *Decoder) (T, error) {
		var v T
		err := get(d, &v, nil)
		return v, err
	}
}
