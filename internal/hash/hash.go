// Package hash computes the content fingerprints that identify every blob
// and commit in the object store.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Fingerprint returns the 40-character lowercase hex digest of data.
func Fingerprint(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// FingerprintObject hashes data together with a "<kind> <len>\n" typed
// header, so that a blob's fingerprint depends on both its declared kind
// and its bytes. The header is only hashed; the object store writes the
// bare data to disk.
func FingerprintObject(kind string, data []byte) string {
	header := fmt.Sprintf("%s %d\n", kind, len(data))
	h := sha1.New()
	h.Write([]byte(header))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
