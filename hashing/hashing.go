// Package hashing digests generated file contents.
//
// Digests are recorded on generated sources so callers can cache and diff
// them. Every implementation is deterministic: the same bytes always give
// the same lower-case hex string.
package hashing

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/danibachar/tuist/errors"
	"lukechampine.com/blake3"
)

// Algorithm names accepted by New and the hashing.algorithm config key.
const (
	AlgorithmMD5    = "md5"
	AlgorithmSHA256 = "sha256"
	AlgorithmBLAKE3 = "blake3"

	DefaultAlgorithm = AlgorithmMD5
)

// ContentHasher turns bytes into a stable digest string.
type ContentHasher interface {
	Hash(data []byte) (string, error)
}

// Func adapts a plain function to ContentHasher.
type Func func(data []byte) (string, error)

// Hash calls f(data).
func (f Func) Hash(data []byte) (string, error) { return f(data) }

// MD5 is the default hasher, matching digests recorded by earlier runs.
type MD5 struct{}

func (MD5) Hash(data []byte) (string, error) {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// SHA256 hashes with SHA-256.
type SHA256 struct{}

func (SHA256) Hash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// BLAKE3 hashes with 256-bit BLAKE3.
type BLAKE3 struct{}

func (BLAKE3) Hash(data []byte) (string, error) {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

var hashers = map[string]ContentHasher{
	AlgorithmMD5:    MD5{},
	AlgorithmSHA256: SHA256{},
	AlgorithmBLAKE3: BLAKE3{},
}

// New returns the hasher registered under name (case-insensitive). An empty
// name selects DefaultAlgorithm.
func New(name string) (ContentHasher, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownHasher, "%q", name),
			"supported algorithms: %s", strings.Join(Algorithms(), ", "),
		)
	}
	return h, nil
}

// Algorithms returns the supported algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
