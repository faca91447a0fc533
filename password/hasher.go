package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords at a fixed bcrypt cost.
//
// Build one with [New] at configuration time so an invalid cost surfaces
// once, not on every login.  A Hasher is immutable and safe for concurrent
// use by multiple goroutines.
type Hasher struct {
	cost int
}

// New constructs a Hasher.  Returns an error wrapping [ErrInvalidParameter]
// if the resolved cost is outside [MinCost, MaxCost].
func New(opts ...Option) (*Hasher, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return &Hasher{cost: o.Cost}, nil
}

// Cost returns the configured bcrypt work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash pre-hashes password and encodes it with bcrypt under a fresh random
// salt, returning the 60-character Modular Crypt Format string
// (e.g. "$2a$10$...").  Two calls with the same password never return the
// same string.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(PreHash(password)), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Check reports whether password matches hash.  The cost is read from hash,
// not from the Hasher.  A malformed hash yields false.
func (h *Hasher) Check(password, hash string) bool {
	ok, _ := h.Verify(password, hash)
	return ok
}

// Verify is Check with the failure reason kept.
// Returns (false, nil) on mismatch and (false, err) wrapping
// [ErrMalformedHash] when hash is not a bcrypt string.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	return compare(PreHash(password), hash)
}

// CheckOrSimulate is the login-path form of Check.  When found is false
// (no stored hash for the account) or the stored hash is malformed it runs
// [Hasher.Simulate] and returns false, so neither case rejects faster than
// a wrong password.
func (h *Hasher) CheckOrSimulate(password, hash string, found bool) bool {
	if !found {
		_ = h.Simulate()
		return false
	}
	ok, err := h.Verify(password, hash)
	if errors.Is(err, ErrMalformedHash) {
		_ = h.Simulate()
		return false
	}
	return ok
}

// NeedsRehash reports whether hash was produced with a cost other than the
// Hasher's.  Callers should re-hash on the next successful login.
func (h *Hasher) NeedsRehash(hash string) (bool, error) {
	info, err := Info(hash)
	if err != nil {
		return false, err
	}
	return info.Cost != h.cost, nil
}

// Hash is the one-shot form of [Hasher.Hash].
//
//	hash, err := password.Hash("admin123", password.WithCost(12))
func Hash(password string, opts ...Option) (string, error) {
	h, err := New(opts...)
	if err != nil {
		return "", err
	}
	return h.Hash(password)
}

// Check is the one-shot form of [Hasher.Check].  opts are accepted for
// symmetry with Hash and ignored: the cost always comes from hash.
func Check(password, hash string, opts ...Option) bool {
	ok, _ := Verify(password, hash)
	return ok
}

// Verify is the one-shot form of [Hasher.Verify].
func Verify(password, hash string) (bool, error) {
	return compare(PreHash(password), hash)
}

// compare runs the bcrypt comparator, which re-derives cost and salt from
// hash and compares the computed bytes in constant time.
func compare(digest, hash string) (bool, error) {
	if err := checkVersion(hash); err != nil {
		return false, err
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(digest))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// checkVersion rejects identifiers other than 2a, 2b and 2y.  The bcrypt
// package accepts any minor byte after "$2", so "$2x$" would otherwise
// verify.
func checkVersion(hash string) error {
	if len(hash) < 4 || hash[0] != '$' || hash[1] != '2' || hash[3] != '$' {
		return fmt.Errorf("%w: missing $2?$ prefix", ErrMalformedHash)
	}
	switch hash[2] {
	case 'a', 'b', 'y':
		return nil
	}
	return fmt.Errorf("%w: unsupported version %q", ErrMalformedHash, hash[1:3])
}
