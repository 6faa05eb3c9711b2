package checksum

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// ChunkSize is the number of bytes consumed by one step of the Vector strategy.
	ChunkSize = 32
	// Lanes is the number of uint64 accumulators in the Vector strategy.
	Lanes = ChunkSize / 8
	// HexLen is the length of the string returned by Hex.
	HexLen = 16

	multiplier = 31
)

var (
	ErrUnknownStrategy = errors.New("unknown checksum strategy")
)

// Strategy selects how a checksum is computed.
type Strategy uint8

const (
	// Auto uses the strategy chosen for this CPU when the package was loaded.
	Auto Strategy = iota
	// Scalar folds every byte with the multiply-add recurrence.
	Scalar
	// Vector accumulates whole chunks in lanes before folding the remainder.
	Vector
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy returns the Strategy named by s, ignoring case.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "scalar":
		return Scalar, nil
	case "vector", "simd":
		return Vector, nil
	default:
		return Auto, fmt.Errorf("%w: '%s'", ErrUnknownStrategy, s)
	}
}

// resolve turns Auto into the preferred strategy.
func (s Strategy) resolve() Strategy {
	if s == Auto {
		return preferred
	}
	return s
}

// Preferred reports the strategy that Auto resolves to on this machine.
func Preferred() Strategy {
	return preferred
}

// Sum64 computes the checksum of data using the preferred strategy.
func Sum64(data []byte) uint64 {
	return Sum64With(Auto, data)
}

// Sum64With computes the checksum of data with the given strategy.
// Unrecognized strategies are treated as Scalar.
func Sum64With(s Strategy, data []byte) uint64 {
	if s.resolve() == Vector {
		return sumVector(data)
	}
	return sumScalar(0, data)
}

// Hex computes the checksum of data using the preferred strategy, and formats it with FormatHex.
func Hex(data []byte) string {
	return FormatHex(Sum64(data))
}

// HexWith computes the checksum of data with the given strategy, and formats it with FormatHex.
func HexWith(s Strategy, data []byte) string {
	return FormatHex(Sum64With(s, data))
}

// FormatHex renders sum as 16 lowercase hex characters, zero-padded on the left.
func FormatHex(sum uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sum)
	return hex.EncodeToString(buf[:])
}

func sumScalar(seed uint64, data []byte) uint64 {
	h := seed
	for _, b := range data {
		h = h*multiplier + uint64(b)
	}
	return h
}

func sumVector(data []byte) uint64 {
	var acc [Lanes]uint64
	n := accumulate(&acc, data)
	return sumScalar(fold(&acc), data[n:])
}

// accumulate adds every whole chunk of data into acc, and returns the number of bytes consumed.
func accumulate(acc *[Lanes]uint64, data []byte) int {
	a0, a1, a2, a3 := acc[0], acc[1], acc[2], acc[3]
	n := len(data) - len(data)%ChunkSize
	for i := 0; i < n; i += ChunkSize {
		chunk := data[i : i+ChunkSize : i+ChunkSize]
		a0 += binary.LittleEndian.Uint64(chunk[0:8])
		a1 += binary.LittleEndian.Uint64(chunk[8:16])
		a2 += binary.LittleEndian.Uint64(chunk[16:24])
		a3 += binary.LittleEndian.Uint64(chunk[24:32])
	}
	acc[0], acc[1], acc[2], acc[3] = a0, a1, a2, a3
	return n
}

func fold(acc *[Lanes]uint64) uint64 {
	return acc[0] ^ acc[1] ^ acc[2] ^ acc[3]
}
