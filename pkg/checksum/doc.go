/*
Package checksum provides a fast 64-bit rolling checksum of byte buffers, intended as an integrity or deduplication hint.

This is NOT a cryptographic digest.
There is no claim of collision resistance, avalanche behavior, or resistance to intentional forgery.

# How it works:

The buffer is consumed in two passes over the same running value.

With the Vector strategy, every whole 32 byte chunk is read as four little-endian uint64 lanes, and each lane is added (with wraparound) into a four lane accumulator.
Any remainder smaller than a chunk is left for the tail pass.
The four lanes are then folded together with XOR into a single seed, which is 0 if no chunk was consumed.

The tail pass folds every remaining byte into the running value as value = value*31 + byte, in buffer order, starting from the seed.
With the Scalar strategy there is no chunk pass, so the entire buffer is folded this way starting from 0.

The result is rendered by Hex as exactly 16 lowercase, zero-padded hex characters.

# Strategy selection:

Auto resolves once when the package is loaded: Vector if the CPU reports 256-bit integer vectors (AVX2) on amd64 or Advanced SIMD on arm64, and Scalar otherwise.
The two strategies are not equivalent: a buffer of 32 bytes or more will generally hash differently depending on which one ran.
Values that are persisted or sent to another machine should be computed with an explicit strategy, using Sum64With or HexWith.
*/
package checksum
