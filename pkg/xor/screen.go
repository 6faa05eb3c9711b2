package xor

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey      = errors.New("cannot use empty key")
	ErrInvalidOffset = errors.New("offset out of range")
)

type xorScreen struct {
	key  []byte
	init int
	cur  int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("%w: offset %d for provided key of len %d", ErrInvalidOffset, offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

// screen applies the key to buf in place, continuing from wherever the last call left off.
func (s *xorScreen) screen(buf []byte) {
	s.cur = applyAt(buf, s.key, s.cur)
}

func (s *xorScreen) reset() {
	s.cur = s.init
}
