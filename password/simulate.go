package password

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	// simulatedPasswordLen is the byte length of the throwaway password.
	simulatedPasswordLen = 64

	// simulatedSaltLen random bytes hex-encode to 52 characters; with the
	// filler that makes the 53-character salt+digest field of a bcrypt hash.
	simulatedSaltLen = 26
	simulatedFiller  = 'O'
)

// Simulate performs the work of a failed [Check] at the resolved cost
// without a stored hash.  Run it when a login names an account that does
// not exist so the response time does not reveal that fact.
//
// The only error is [ErrInvalidParameter] for an out-of-range cost.
func Simulate(opts ...Option) error {
	h, err := New(opts...)
	if err != nil {
		return err
	}
	return h.Simulate()
}

// Simulate is [Simulate] at the Hasher's cost.
func (h *Hasher) Simulate() error {
	var buf [simulatedPasswordLen + simulatedSaltLen]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Errorf("password: failed to read random bytes: %w", err)
	}

	candidate := latin1(buf[:simulatedPasswordLen])
	hash := fabricate(h.cost, buf[simulatedPasswordLen:])

	// Same path as Check: pre-hash, then a full bcrypt key setup at cost.
	_, _ = compare(PreHash(candidate), hash)
	return nil
}

// fabricate builds "$2a$<cost>$<52 hex><filler>".  Hex digits belong to
// bcrypt's base-64 alphabet, so the result parses as a real hash.
func fabricate(cost int, salt []byte) string {
	return fmt.Sprintf("$2a$%02d$%s%c", cost, hex.EncodeToString(salt), simulatedFiller)
}

// latin1 decodes b one byte per character.
func latin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}
