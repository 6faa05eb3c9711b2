package native

import (
	"errors"
	"fmt"
	"sort"

	"github.com/saylorsolutions/bufops/pkg/checksum"
	"github.com/saylorsolutions/bufops/pkg/xor"
)

const (
	XorCipherName    = "xorCipher"
	SimdChecksumName = "simdChecksum"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownFunction = errors.New("unknown function")
)

// Func is the calling convention of every exported function.
type Func = func(args ...any) (any, error)

var exports = map[string]Func{
	XorCipherName:    XorCipher,
	SimdChecksumName: SimdChecksum,
}

// Lookup returns the exported Func with the given name.
func Lookup(name string) (Func, bool) {
	fn, ok := exports[name]
	return fn, ok
}

// Call invokes the exported Func with the given name.
func Call(name string, args ...any) (any, error) {
	fn, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFunction, name)
	}
	return fn(args...)
}

// Names returns the sorted names of all exported functions.
func Names() []string {
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// XorCipher expects a data buffer and a key buffer.
// The data buffer is screened in place and returned.
func XorCipher(args ...any) (any, error) {
	if err := expectArgs(XorCipherName, args, 2); err != nil {
		return nil, err
	}
	data, err := bufferArg(XorCipherName, args, 0)
	if err != nil {
		return nil, err
	}
	key, err := bufferArg(XorCipherName, args, 1)
	if err != nil {
		return nil, err
	}
	return xor.Apply(data, key), nil
}

// SimdChecksum expects a single data buffer, and returns its checksum as a hex string.
func SimdChecksum(args ...any) (any, error) {
	if err := expectArgs(SimdChecksumName, args, 1); err != nil {
		return nil, err
	}
	data, err := bufferArg(SimdChecksumName, args, 0)
	if err != nil {
		return nil, err
	}
	return checksum.Hex(data), nil
}

func expectArgs(fn string, args []any, count int) error {
	if len(args) != count {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArgument, fn, count, len(args))
	}
	return nil
}

func bufferArg(fn string, args []any, pos int) ([]byte, error) {
	buf, ok := args[pos].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s argument %d must be a buffer, got %T", ErrInvalidArgument, fn, pos, args[pos])
	}
	return buf, nil
}
