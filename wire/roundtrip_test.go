package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allScalars exercises every scalar Put*/Get* pair this package exposes
// except Enum (which delegates to Int32), plus unpacked and packed
// repeated int32.
type allScalars struct {
	I32        int32
	I64        int64
	U32        uint32
	U64        uint64
	S32        int32
	S64        int64
	F32        uint32
	F64        uint64
	SF32       int32
	SF64       int64
	Fl         float32
	Dbl        float64
	B          bool
	Str        string
	Byt        []byte
	RepI32     []int32
	PackedI32  []int32
}

func (m *allScalars) Encode(e *Encoder) {
	e.PutInt32(1, m.I32)
	e.PutInt64(2, m.I64)
	e.PutUint32(3, m.U32)
	e.PutUint64(4, m.U64)
	e.PutSint32(5, m.S32)
	e.PutSint64(6, m.S64)
	e.PutFixed32(7, m.F32)
	e.PutFixed64(8, m.F64)
	e.PutSfixed32(9, m.SF32)
	e.PutSfixed64(10, m.SF64)
	e.PutFloat(11, m.Fl)
	e.PutDouble(12, m.Dbl)
	e.PutBool(13, m.B)
	_ = e.PutString(14, m.Str)
	_ = e.PutBytes(15, m.Byt)
	e.PutRepeatedInt32(16, m.RepI32)
	_ = e.PutPackedInt32(17, m.PackedI32)
}

func (m *allScalars) Decode(d *Decoder) error {
	for {
		more, err := d.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		var err2 error
		switch d.FieldNum {
		case 1:
			err2 = GetInt32(d, &m.I32, nil)
		case 2:
			err2 = GetInt64(d, &m.I64, nil)
		case 3:
			err2 = GetUint32(d, &m.U32, nil)
		case 4:
			err2 = GetUint64(d, &m.U64, nil)
		case 5:
			err2 = GetSint32(d, &m.S32, nil)
		case 6:
			err2 = GetSint64(d, &m.S64, nil)
		case 7:
			err2 = GetFixed32(d, &m.F32, nil)
		case 8:
			err2 = GetFixed64(d, &m.F64, nil)
		case 9:
			err2 = GetSfixed32(d, &m.SF32, nil)
		case 10:
			err2 = GetSfixed64(d, &m.SF64, nil)
		case 11:
			err2 = GetFloat(d, &m.Fl, nil)
		case 12:
			err2 = GetDouble(d, &m.Dbl, nil)
		case 13:
			err2 = GetBool(d, &m.B, nil)
		case 14:
			err2 = GetString(d, &m.Str, nil)
		case 15:
			err2 = GetBytes(d, &m.Byt, nil)
		case 16:
			err2 = AppendRepeatedInt32(d, &m.RepI32)
		case 17:
			err2 = AppendRepeatedInt32(d, &m.PackedI32)
		default:
			err2 = d.SkipField()
		}
		if err2 != nil {
			return err2
		}
	}
	return nil
}

func TestAllScalarsRoundTrip(t *testing.T) {
	src := allScalars{
		I32: -7, I64: -1234567890123, U32: 42, U64: 9999999999,
		S32: -5, S64: -500000000000, F32: 0xdeadbeef, F64: 0x0102030405060708,
		SF32: -9, SF64: -900000000000, Fl: 3.5, Dbl: 2.718281828,
		B: true, Str: "hello", Byt: []byte{1, 2, 3},
		RepI32: []int32{7, 8, 9}, PackedI32: []int32{1, 150, 3},
	}
	encoded := Marshal(&src)

	var got allScalars
	require.NoError(t, Unmarshal(encoded, &got))
	assert.Equal(t, src, got)
}

func TestUnpackedRepeatedDecodesIntoPackedField(t *testing.T) {
	// Write field 17 unpacked even though the schema calls it packed;
	// the decoder must accept either form per occurrence.
	e := NewEncoder(8)
	e.PutRepeatedInt32(17, []int32{1, 2, 3})

	var got allScalars
	require.NoError(t, Unmarshal(e.Result(), &got))
	assert.Equal(t, []int32{1, 2, 3}, got.PackedI32)
}

func TestUnknownFieldTolerance(t *testing.T) {
	e := NewEncoder(16)
	e.PutInt32(1, 11)
	e.PutString(99, "from-the-future") // unknown in the old schema
	e.PutInt32(2, 22)
	encoded := e.Result()

	type oldSchema struct {
		A, C int32
	}
	var got oldSchema
	d := NewDecoder(encoded)
	for {
		more, err := d.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		switch d.FieldNum {
		case 1:
			require.NoError(t, GetInt32(d, &got.A, nil))
		case 2:
			require.NoError(t, GetInt32(d, &got.C, nil))
		default:
			require.NoError(t, d.SkipField())
		}
	}
	assert.Equal(t, int32(11), got.A)
	assert.Equal(t, int32(22), got.C)
}

func TestNestedMessageRoundTrip(t *testing.T) {
	inner := reqMsg{Req: 5, HasReq: true}
	outer := mainMsg{ReqMsg: inner, HasReqMsg: true}
	encoded := Marshal(&outer)

	var got mainMsg
	require.NoError(t, Unmarshal(encoded, &got))
	assert.Equal(t, outer, got)
}
