// Package flowhash turns a dissected FlowKeys into the 32-bit hash
// used for RSS-style flow steering: a SipHash-2-4 digest over a fixed
// window of the flow's fields, made direction-independent by swapping
// source/destination before hashing, truncated to 32 bits and remapped
// away from zero.
package flowhash

import (
	"crypto/rand"
	"sync"
)

// Key is a 128-bit SipHash-2-4 key.
type Key [16]byte

var (
	secretOnce sync.Once
	secret     Key
)

// processSecret returns the process-wide random hash key, generating it
// on first use. Every Frame/FromKeys call that does not supply its own
// key goes through this -- the Go equivalent of the kernel's
// net_get_random_once-guarded hashrnd.
func processSecret() Key {
	secretOnce.Do(func() {
		if _, err := rand.Read(secret[:]); err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// there is no sane fallback that preserves unpredictability.
			panic("flowhash: crypto/rand unavailable: " + err.Error())
		}
	})
	return secret
}
