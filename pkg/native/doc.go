/*
Package native exposes the buffer transforms of this module to a host application through a small, dynamically typed call surface.

A host that dispatches calls by name, like a scripting runtime or plugin loader, can look up an exported Func with Lookup, or invoke it with Call.
Every Func checks the number and types of its arguments before reaching any transform logic, and reports problems with an error wrapping ErrInvalidArgument.
Well-formed calls always succeed.

Exported functions:
  - xorCipher(data []byte, key []byte) []byte screens data in place with xor.Apply, and returns the same slice.
  - simdChecksum(data []byte) string returns the 16 character hex checksum of data, computed with checksum.Hex.
*/
package native
