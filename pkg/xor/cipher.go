package xor

// Apply screens buf with key in place and returns buf.
// Byte i is XOR'ed with key[i % len(key)], so applying the same key again restores the original data.
// If key is empty, buf is returned unchanged.
func Apply(buf, key []byte) []byte {
	return ApplyAt(buf, key, 0)
}

// ApplyAt works like Apply, but starts at position offset within the key.
// Offsets beyond the key length wrap around.
func ApplyAt(buf, key []byte, offset int) []byte {
	applyAt(buf, key, offset)
	return buf
}

func applyAt(buf, key []byte, offset int) int {
	klen := len(key)
	if klen == 0 {
		return 0
	}
	pos := offset % klen
	if pos < 0 {
		pos += klen
	}
	for i := range buf {
		buf[i] ^= key[pos]
		pos++
		if pos == klen {
			pos = 0
		}
	}
	return pos
}
