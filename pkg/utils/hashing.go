package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// CandidateID derives a stable identity for an ephemeral search hit from its
// name and address. Two venues sharing a display name get distinct ids as long
// as their addresses differ.
func CandidateID(name, address string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(address))
	return hex.EncodeToString(h.Sum(nil))
}
