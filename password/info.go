package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Version is the bcrypt identifier between the first two '$'
	// ("2a", "2b", "2y").
	Version string

	// Cost is the work factor the hash was produced with.
	Cost int
}

// Info extracts metadata from hash without verifying it.  Useful for
// auditing and migration tooling.
func Info(hash string) (HashInfo, error) {
	if err := checkVersion(hash); err != nil {
		return HashInfo{}, err
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	return HashInfo{Version: hash[1:3], Cost: cost}, nil
}
