package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 16383, 16384, 1<<32 - 1, 1<<63 - 1, 1<<64 - 1}
	for _, v := range cases {
		e := NewEncoder(16)
		e.putUvarintValue(v)
		encoded := e.Result()
		got, n, err := consumeUvarint(encoded)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, len(encoded))
	}
}

func TestVarintTooLong(t *testing.T) {
	// 11 bytes, all with the continuation bit set: never terminates within
	// maxVarintLen.
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0xff
	}
	_, _, err := consumeUvarint(buf)
	assert.ErrorIs(t, err, ErrVarintTooLong)
}

func TestVarintTruncated(t *testing.T) {
	buf := []byte{0xff, 0xff} // continuation bit set, then EOF
	_, _, err := consumeUvarint(buf)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestZigzag(t *testing.T) {
	cases := map[int64]uint64{
		0:  0,
		-1: 1,
		1:  2,
		-2: 3,
		2:  4,
	}
	for signed, unsigned := range cases {
		assert.Equal(t, unsigned, zigzagEncode(signed))
		assert.Equal(t, signed, zigzagDecode(unsigned))
	}
}
