// Package cryptox hashes and verifies account passwords with argon2id.
//
// A stored credential holds the salt, the KDF parameters it was derived
// with and a SHA-256 verifier of the derived key. The raw derived key is
// never persisted.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/techmarket/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// KDFParams configures argon2id. Zero fields are replaced with the
// defaults from DefaultKDFParams.
type KDFParams struct {
	Time      uint32 `json:"time"`
	MemoryKiB uint32 `json:"memoryKiB"`
	Threads   uint8  `json:"threads"`
}

func DefaultKDFParams() KDFParams {
	return KDFParams{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}
}

func (p KDFParams) normalized() KDFParams {
	d := DefaultKDFParams()
	if p.Time == 0 {
		p.Time = d.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = d.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = d.Threads
	}
	return p
}

// PasswordHash is the persisted form of a password.
type PasswordHash struct {
	Verifier []byte    `json:"verifier"`
	Salt     []byte    `json:"salt"`
	KDF      KDFParams `json:"kdf"`
}

func DeriveKey(password, salt []byte, p KDFParams) []byte {
	p = p.normalized()
	return argon2.IDKey(password, salt, p.Time, p.MemoryKiB, p.Threads, KeySize)
}

func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword derives a credential for password using a fresh random salt.
func HashPassword(password []byte, p KDFParams) (*PasswordHash, error) {
	salt, err := common.GenerateRandByteArray(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	p = p.normalized()

	key := DeriveKey(password, salt, p)
	defer common.WipeByteArray(key)

	return &PasswordHash{Verifier: MakeVerifier(key), Salt: salt, KDF: p}, nil
}

// Verify reports whether password matches h. A nil or incomplete hash
// never matches.
func (h *PasswordHash) Verify(password []byte) bool {
	if h == nil || len(h.Salt) == 0 || len(h.Verifier) == 0 {
		return false
	}
	key := DeriveKey(password, h.Salt, h.KDF)
	defer common.WipeByteArray(key)

	return subtle.ConstantTimeCompare(MakeVerifier(key), h.Verifier) == 1
}

var dummySalt = make([]byte, SaltSize)

// Burn performs one derivation with throwaway inputs so a lookup miss costs
// about the same as a real verification.
func Burn(password []byte, p KDFParams) {
	common.WipeByteArray(DeriveKey(password, dummySalt, p))
}
