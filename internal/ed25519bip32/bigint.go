package ed25519bip32

// addMod256 adds two little-endian 256-bit integers modulo 2^256, discarding
// any carry out of the top byte. BIP32-Ed25519 deliberately works over this
// non-reduced keyspace rather than the Ed25519 group order (spec.md §4.8).
func addMod256(a, b [32]byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// shiftLeft3 treats in as a little-endian integer and returns in*8 as a
// little-endian 32-byte buffer (the "8*ZL" term of child key derivation).
func shiftLeft3(in [28]byte) [32]byte {
	var out [32]byte
	var carry byte
	for i := 0; i < 28; i++ {
		out[i] = (in[i] << 3) | carry
		carry = in[i] >> 5
	}
	out[28] = carry
	return out
}
