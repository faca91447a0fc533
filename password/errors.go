package password

import "errors"

// Errors come back wrapped with the failing detail; match them with
// [errors.Is]:
//
//	if _, err := password.Verify(candidate, stored); errors.Is(err, password.ErrMalformedHash) {
//		// the stored column holds something other than a bcrypt string
//	}
var (
	// ErrInvalidParameter is returned when a cost falls outside
	// [MinCost, MaxCost].  It is raised before any hashing work starts.
	ErrInvalidParameter = errors.New("password: invalid parameter")

	// ErrMalformedHash is returned by [Verify], [Info] and
	// [Hasher.NeedsRehash] when the encoded hash does not follow the bcrypt
	// grammar.  [Check] never returns it; a malformed hash is a mismatch.
	ErrMalformedHash = errors.New("password: malformed hash")
)
