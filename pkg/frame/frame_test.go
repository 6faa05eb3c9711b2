package frame

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saylorsolutions/bufops/pkg/checksum"
)

var testKey = []byte{0xde, 0xad, 0xbe, 0xef}

func TestSealOpen(t *testing.T) {
	payload := []byte("A payload that should survive the round trip")
	orig := append([]byte(nil), payload...)

	data, err := Seal(payload, testKey)
	assert.NoError(t, err)
	assert.Len(t, data, HeaderLen+len(payload))
	assert.Equal(t, orig, payload, "payload should not be modified")
	assert.NotContains(t, string(data), "payload", "payload should be screened")

	out, err := Open(data, testKey)
	assert.NoError(t, err)
	assert.Equal(t, orig, out)
}

func TestSealOpen_Unscreened(t *testing.T) {
	payload := []byte("plain text")
	data, err := Seal(payload, nil)
	assert.NoError(t, err)
	assert.Equal(t, payload, data[HeaderLen:])

	out, err := Open(data, nil)
	assert.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestSealOpen_Empty(t *testing.T) {
	data, err := Seal(nil, testKey)
	assert.NoError(t, err)
	assert.Len(t, data, HeaderLen)

	out, err := Open(data, testKey)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestHeader_Layout(t *testing.T) {
	payload := []byte{0x1, 0x2}
	data, err := Seal(payload, testKey)
	assert.NoError(t, err)

	assert.Equal(t, Magic, data[0])
	assert.Equal(t, Version, data[1])
	assert.Equal(t, flagScreened, data[2])
	assert.Equal(t, uint64(2), endian.Uint64(data[3:11]))
	assert.Equal(t, checksum.Sum64With(checksum.Scalar, payload), endian.Uint64(data[11:19]))
}

func TestRead_Stream(t *testing.T) {
	var buf bytes.Buffer
	payloads := [][]byte{[]byte("first"), {}, bytes.Repeat([]byte{0x7}, 100)}
	for _, p := range payloads {
		assert.NoError(t, Write(&buf, p, testKey))
	}

	for _, p := range payloads {
		out, err := Read(&buf, testKey)
		assert.NoError(t, err)
		assert.Equal(t, p, out)
	}
	_, err := Read(&buf, testKey)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpen_Neg(t *testing.T) {
	valid, err := Seal([]byte("some data"), testKey)
	assert.NoError(t, err)

	corrupt := func(fn func(data []byte) []byte) []byte {
		return fn(append([]byte(nil), valid...))
	}

	tests := map[string]struct {
		data     []byte
		key      []byte
		expected error
	}{
		"No data": {
			data:     nil,
			key:      testKey,
			expected: ErrInvalidHeader,
		},
		"Short header": {
			data:     valid[:HeaderLen-1],
			key:      testKey,
			expected: ErrInvalidHeader,
		},
		"Bad magic": {
			data:     corrupt(func(d []byte) []byte { d[0] = 0x0; return d }),
			key:      testKey,
			expected: ErrInvalidHeader,
		},
		"Bad version": {
			data:     corrupt(func(d []byte) []byte { d[1] = 0x9; return d }),
			key:      testKey,
			expected: ErrInvalidHeader,
		},
		"Unknown flags": {
			data:     corrupt(func(d []byte) []byte { d[2] |= 0x80; return d }),
			key:      testKey,
			expected: ErrInvalidHeader,
		},
		"Missing key": {
			data:     valid,
			key:      nil,
			expected: ErrKeyRequired,
		},
		"Wrong key": {
			data:     valid,
			key:      []byte{0x1},
			expected: ErrChecksumMismatch,
		},
		"Flipped payload bit": {
			data:     corrupt(func(d []byte) []byte { d[HeaderLen] ^= 0x1; return d }),
			key:      testKey,
			expected: ErrChecksumMismatch,
		},
		"Truncated payload": {
			data:     valid[:len(valid)-1],
			key:      testKey,
			expected: io.ErrUnexpectedEOF,
		},
		"Trailing data": {
			data:     append(append([]byte(nil), valid...), 0x0),
			key:      testKey,
			expected: ErrInvalidHeader,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Open(tc.data, tc.key)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestRead_MaxLength(t *testing.T) {
	data, err := Seal(make([]byte, 64), nil)
	assert.NoError(t, err)

	_, err = Open(data, nil, MaxLength(63))
	assert.ErrorIs(t, err, ErrTooLarge)

	out, err := Open(data, nil, MaxLength(64))
	assert.NoError(t, err)
	assert.Len(t, out, 64)

	_, err = Open(data, nil, MaxLength(0))
	assert.Error(t, err)
}

func TestHeader_MarshalBinary(t *testing.T) {
	h := header{magic: Magic, version: Version, flags: flagScreened, length: 300, sum: 0x0123456789abcdef}
	data, err := h.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, HeaderLen)

	var parsed header
	assert.NoError(t, parsed.UnmarshalBinary(data))
	assert.Equal(t, h, parsed)
	assert.True(t, parsed.screened())

	assert.ErrorIs(t, parsed.UnmarshalBinary(data[:5]), ErrInvalidHeader)
}
