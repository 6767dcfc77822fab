// Package secutil holds the zeroization helpers every secret-handling
// package in this module defers to on every exit path, per the
// §3 invariant that password, keystream, entropy, seed, and extended-key
// bytes never outlive the call that produced them.
package secutil

// Zero overwrites b in place with zero bytes. It is safe to call on a nil
// or empty slice.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroAll zeroizes every slice given, in order. Intended to be deferred at
// the top of a function that materializes several secret buffers:
//
//	defer secutil.ZeroAll(&entropy, &keystream)
func ZeroAll(bufs ...*[]byte) {
	for _, b := range bufs {
		if b == nil {
			continue
		}
		Zero(*b)
	}
}
