// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// WireType identifies how a field's value is laid out on the wire,
// independent of its declared protocol-buffer type. Values match the
// low three bits of every tag, per common.hpp's WireType enum.
type WireType uint8

const (
	VarintType     WireType = 0
	Fixed64Type    WireType = 1
	BytesType      WireType = 2 // length-delimited
	StartGroupType WireType = 3
	EndGroupType   WireType = 4
	Fixed32Type    WireType = 5
)

func (wt WireType) String() string {
	switch wt {
	case VarintType:
		return "varint"
	case Fixed64Type:
		return "fixed64"
	case BytesType:
		return "bytes"
	case StartGroupType:
		return "start_group"
	case EndGroupType:
		return "end_group"
	case Fixed32Type:
		return "fixed32"
	default:
		return "unknown"
	}
}

// maxVarintLen is the longest a varint encoding of any uint64 can be:
// ceil(64/7) = 10 seven-bit groups.
const maxVarintLen = 10

// maxLengthCodeLen is the fixed width reserved for a length-delimited
// value's backpatched length prefix: ceil(32/7) = 5. Every backpatched
// prefix (nested messages, map entries, and the packed writers that use
// commitLengthDelimited) occupies exactly this many bytes, padded with
// continuation bits, regardless of the value's true magnitude; lengths
// known up front (strings, bytes) are written as minimal varints.
const maxLengthCodeLen = 5

// maxLength is the largest length-delimited payload this codec will
// encode or accept: 2^31-1, matching the original's length_too_long
// threshold.
const maxLength = 1<<31 - 1

// Tag packs a field number and wire type into the varint written before
// every field's value, i.e. (field_number << 3) | wire_type.
func Tag(fieldNum uint32, wt WireType) uint64 {
	return uint64(fieldNum)<<3 | uint64(wt&7)
}

// splitTag is the inverse of Tag. ok is false when the field number is
// zero or cannot be represented in 32 bits, i.e. the wire's
// invalid_fieldnum case.
func splitTag(tag uint64) (fieldNum uint32, wt WireType, ok bool) {
	n := tag >> 3
	if n == 0 || n > 0xffffffff {
		return 0, 0, false
	}
	return uint32(n), WireType(tag & 7), true
}
