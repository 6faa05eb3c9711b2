package native

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saylorsolutions/bufops/pkg/checksum"
)

func TestXorCipher(t *testing.T) {
	data := []byte{0x41, 0x42, 0x43}
	out, err := XorCipher(data, []byte{0xFF})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xBE, 0xBD, 0xBC}, out)
	assert.Equal(t, []byte{0xBE, 0xBD, 0xBC}, data, "data should be modified in place")

	out, err = XorCipher(data, []byte{0xFF})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, out)
}

func TestXorCipher_EmptyKey(t *testing.T) {
	data := []byte{0x1, 0x2}
	out, err := XorCipher(data, []byte{})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x1, 0x2}, out)
}

func TestSimdChecksum(t *testing.T) {
	out, err := SimdChecksum([]byte{})
	assert.NoError(t, err)
	assert.Equal(t, "0000000000000000", out)

	out, err = SimdChecksum([]byte{0x41})
	assert.NoError(t, err)
	assert.Equal(t, "0000000000000041", out)

	data := make([]byte, 100)
	data[3] = 0x9
	out, err = SimdChecksum(data)
	assert.NoError(t, err)
	assert.Equal(t, checksum.Hex(data), out)
}

func TestInvalidArguments(t *testing.T) {
	tests := map[string]struct {
		fn   Func
		args []any
	}{
		"xorCipher no args":       {XorCipher, nil},
		"xorCipher one arg":       {XorCipher, []any{[]byte{0x1}}},
		"xorCipher three args":    {XorCipher, []any{[]byte{0x1}, []byte{0x1}, []byte{0x1}}},
		"xorCipher string data":   {XorCipher, []any{"data", []byte{0x1}}},
		"xorCipher nil key":       {XorCipher, []any{[]byte{0x1}, nil}},
		"simdChecksum no args":    {SimdChecksum, nil},
		"simdChecksum two args":   {SimdChecksum, []any{[]byte{}, []byte{}}},
		"simdChecksum int arg":    {SimdChecksum, []any{42}},
		"simdChecksum string arg": {SimdChecksum, []any{"text"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := tc.fn(tc.args...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, out)
		})
	}
}

func TestCall(t *testing.T) {
	out, err := Call(SimdChecksumName, []byte{0x41})
	assert.NoError(t, err)
	assert.Equal(t, "0000000000000041", out)

	_, err = Call("nope")
	assert.ErrorIs(t, err, ErrUnknownFunction)

	fn, ok := Lookup(XorCipherName)
	assert.True(t, ok)
	out, err = fn([]byte{0x01, 0x02, 0x03, 0x04}, []byte{0x00, 0x01})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x03, 0x03, 0x05}, out)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{SimdChecksumName, XorCipherName}, Names())
}
