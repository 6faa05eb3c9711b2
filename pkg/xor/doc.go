/*
Package xor provides some light-weight screening of lower sensitivity data.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for preventing passive observation of plain text information, like P2P traffic, since it generally requires knowledge of the original key to correctly reverse the process.

# How it works:

Apply performs a bitwise XOR of every byte in a buffer against a key, in place.
Once a key byte is used, the screen will progress to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
Applying the same key a second time restores the original bytes.
An empty key leaves the buffer untouched.

Reader and Writer do the same for streams, and may start at an offset within the key instead of the first byte.
This is useful for adding a little randomness to the process in case it's likely that the same key can be used more than once.
A stream screened in any number of pieces produces the same bytes as a single call to ApplyAt with the same offset.

# Important note:

The same key and offset parameters must be provided to accurately reverse the process.
Failing to do so will likely result in garbled or partly de-obfuscated data.

Apply mutates the caller's buffer directly, so the caller must have exclusive access to it for the duration of the call.

# General guidelines:
  - Longer keys are better, but have limited usefulness with a short payload.
  - Key length should ideally be a function of payload length.
  - Using securely generated keys with the OS entropy pool (like with GenKey or GenKeyAndOffset) are better.
  - DeriveKey can be used when both peers already share a secret, so the key never needs to be sent.
*/
package xor
