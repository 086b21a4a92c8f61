// Package digest computes keyed message digests over a named algorithm.
//
// The key is a plain prefix: the secret is written into the hash before
// the message. This is not an HMAC and offers no protection against
// length extension or secret recovery by brute force. It exists to stay
// compatible with already issued download links.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"repoaccess/internal/shared/logger"
)

// DefaultAlgorithm is used when a configured algorithm is not available.
const DefaultAlgorithm = "MD5"

var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

type factory func() hash.Hash

var algorithms = map[string]factory{
	"MD5":        md5.New,
	"SHA1":       sha1.New,
	"SHA224":     sha256.New224,
	"SHA256":     sha256.New,
	"SHA384":     sha512.New384,
	"SHA512":     sha512.New,
	"SHA3256":    sha3.New256,
	"SHA3512":    sha3.New512,
	"BLAKE2B256": newBlake2b256,
	"BLAKE2B512": newBlake2b512,
	"BLAKE3":     newBlake3,
}

// blake2b constructors only fail for keys longer than 64 bytes.
func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBlake3() hash.Hash {
	return blake3.New()
}

// canonicalName upper-cases the name and drops hyphens so that "sha-256",
// "SHA256" and "Sha-256" all name the same algorithm.
func canonicalName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "")
}

// Algorithms lists the supported algorithm names in canonical form.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether name resolves to a known algorithm.
func Supported(name string) bool {
	_, ok := algorithms[canonicalName(name)]
	return ok
}

// Hasher is immutable; every call allocates its own hash state.
type Hasher struct {
	algorithm string
	secret    []byte
	newHash   factory
}

func New(algorithm, secret string) (*Hasher, error) {
	name := canonicalName(algorithm)
	f, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	return &Hasher{
		algorithm: name,
		secret:    []byte(secret),
		newHash:   f,
	}, nil
}

// NewWithFallback behaves like New but falls back to DefaultAlgorithm
// instead of failing on an unknown algorithm.
func NewWithFallback(algorithm, secret string, log logger.Interface) *Hasher {
	h, err := New(algorithm, secret)
	if err == nil {
		return h
	}

	log.Warnw("digest algorithm not available, falling back",
		"algorithm", algorithm,
		"fallback", DefaultAlgorithm,
		"error", err,
	)
	h, _ = New(DefaultAlgorithm, secret)
	return h
}

func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// HasSecret reports whether digests are keyed.
func (h *Hasher) HasSecret() bool {
	return len(h.secret) > 0
}

// Hash returns the raw digest of secret || message.
func (h *Hasher) Hash(message string) []byte {
	d := h.newHash()
	if len(h.secret) > 0 {
		d.Write(h.secret)
	}
	d.Write([]byte(message))
	return d.Sum(nil)
}

// HashHex returns Hash as lowercase hex.
func (h *Hasher) HashHex(message string) string {
	return hex.EncodeToString(h.Hash(message))
}
