package frame

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	Magic   byte = 0xB5
	Version byte = 1

	// HeaderLen is the encoded size of a frame header.
	HeaderLen = 3 + 8 + 8

	flagScreened byte = 1 << 0
)

var endian = binary.BigEndian

type header struct {
	magic   byte
	version byte
	flags   byte
	length  uint64
	sum     uint64
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.magic),
		bin.Byte(&h.version),
		bin.Byte(&h.flags),
		bin.Int(&h.length),
		bin.Int(&h.sum),
	)
}

func (h *header) screened() bool {
	return h.flags&flagScreened != 0
}

func (h *header) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderLen)
	if err := h.mapper().Write(&buf, endian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *header) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderLen {
		return fmt.Errorf("%w: expected %d header bytes, got %d", ErrInvalidHeader, HeaderLen, len(data))
	}
	if err := h.mapper().Read(bytes.NewReader(data), endian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if h.magic != Magic {
		return fmt.Errorf("%w: bad magic byte 0x%02x", ErrInvalidHeader, h.magic)
	}
	if h.version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, h.version)
	}
	if h.flags&^flagScreened != 0 {
		return fmt.Errorf("%w: unknown flags 0x%02x", ErrInvalidHeader, h.flags)
	}
	return nil
}
