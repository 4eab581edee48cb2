package auth

import (
	"strings"

	"golang.org/x/crypto/sha3"
)

// NormalizeEmail trims and lowercases so the same address always hashes
// to the same registry key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashCredential is the fixed one-way digest applied to emails and
// passwords before they reach the contract gateway. Keccak-256 matches
// what the on-chain registry stores.
func HashCredential(value string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(value))
	return h.Sum(nil)
}
