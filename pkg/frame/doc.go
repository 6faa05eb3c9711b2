/*
Package frame wraps a payload in a small header carrying its length and checksum, optionally screening the payload with an XOR key.
It's meant for passing buffers between peers, where a cheap integrity hint helps catch truncation, corruption, or the use of the wrong key.

Like the xor package, this is NOT encryption, and the checksum is NOT a MAC.
Anybody can forge a frame that will pass validation.

# Layout:

All integers are big-endian.

	magic    1 byte  (0xB5)
	version  1 byte  (1)
	flags    1 byte  (bit 0 set if the payload is screened)
	length   8 bytes (payload length)
	checksum 8 bytes (checksum of the unscreened payload)
	payload  length bytes

The checksum always uses checksum.Scalar, so frames validate the same way on every platform.
*/
package frame
