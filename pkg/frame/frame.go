package frame

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/bufops/pkg/checksum"
	"github.com/saylorsolutions/bufops/pkg/xor"
)

const (
	DefaultMaxLength uint64 = 16 << 20
)

var (
	ErrInvalidHeader    = errors.New("invalid frame header")
	ErrTooLarge         = errors.New("frame payload too large")
	ErrChecksumMismatch = errors.New("frame checksum mismatch")
	ErrKeyRequired      = errors.New("frame is screened, but no key was provided")
)

type readConfig struct {
	maxLength uint64
}

// ReadOpt customizes how Read validates a frame.
type ReadOpt = func(*readConfig) error

// MaxLength sets the largest payload Read will accept, which defaults to DefaultMaxLength.
func MaxLength(length uint64) ReadOpt {
	return func(conf *readConfig) error {
		if length == 0 {
			return errors.New("max length must be greater than 0")
		}
		conf.maxLength = length
		return nil
	}
}

// Write emits a frame containing payload to w.
// If key is non-empty, then the payload is screened with it.
// The payload itself is never modified.
func Write(w io.Writer, payload, key []byte) error {
	h := header{
		magic:   Magic,
		version: Version,
		length:  uint64(len(payload)),
		sum:     checksum.Sum64With(checksum.Scalar, payload),
	}
	body := payload
	if len(key) > 0 {
		h.flags |= flagScreened
		body = xor.Apply(append([]byte(nil), payload...), key)
	}
	hdr, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// Read consumes one frame from r, and returns its validated payload.
// io.EOF is returned unwrapped if r has no more data at a frame boundary.
func Read(r io.Reader, key []byte, opts ...ReadOpt) ([]byte, error) {
	conf := readConfig{maxLength: DefaultMaxLength}
	for _, opt := range opts {
		if err := opt(&conf); err != nil {
			return nil, err
		}
	}

	var (
		raw [HeaderLen]byte
		h   header
	)
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if err := h.UnmarshalBinary(raw[:]); err != nil {
		return nil, err
	}
	if h.length > conf.maxLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrTooLarge, h.length, conf.maxLength)
	}
	if h.screened() && len(key) == 0 {
		return nil, ErrKeyRequired
	}

	payload := make([]byte, h.length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("failed to read frame payload: %w", err)
	}
	if h.screened() {
		xor.Apply(payload, key)
	}
	if sum := checksum.Sum64With(checksum.Scalar, payload); sum != h.sum {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, checksum.FormatHex(h.sum), checksum.FormatHex(sum))
	}
	return payload, nil
}

// Seal returns payload wrapped in a frame.
func Seal(payload, key []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderLen + len(payload))
	if err := Write(&buf, payload, key); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Open returns the payload of a single frame in data.
// Trailing data after the frame is an error.
func Open(data, key []byte, opts ...ReadOpt) ([]byte, error) {
	r := bytes.NewReader(data)
	payload, err := Read(r, key, opts...)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no frame data", ErrInvalidHeader)
		}
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after frame", ErrInvalidHeader, r.Len())
	}
	return payload, nil
}
