// Package password hashes and verifies passwords with bcrypt, and can
// simulate a verification to hide whether an account exists.
//
// # Operations
//
// Three operations form the contract:
//
//   - [Hash] pre-hashes the password and encodes it with bcrypt under a
//     fresh random salt.
//   - [Check] verifies a password against a stored hash.  The cost is read
//     from the hash.  Malformed hashes fail closed.
//   - [Simulate] spends the same CPU time as a failed Check without needing
//     a stored hash.
//
// [Hasher] offers the same operations bound to a cost validated once by
// [New].
//
// # Quick start
//
//	h, err := password.New(password.WithCost(12))
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Hash("my-secret-password")
//	ok := h.Check("my-secret-password", hash) // true
//
//	// unknown account: same latency as a wrong password
//	ok = h.CheckOrSimulate(input, "", false) // false
//
// # Pre-hashing
//
// bcrypt ignores input past 72 bytes.  Every password is first reduced to
// base64(SHA-256(password)), 44 ASCII bytes, so long passphrases keep all
// of their entropy and no input is ever rejected.  See [PreHash].
//
// # Hash format
//
// Hashes are standard bcrypt strings and interoperate with other bcrypt
// implementations that apply the same pre-hash:
//
//	$2a$10$<22-char salt><31-char digest>
//
// # Errors
//
// Cost is validated against [MinCost] and [MaxCost]; out-of-range values
// return [ErrInvalidParameter] before any work is done.  [Verify] and
// [Info] report [ErrMalformedHash] for strings that are not bcrypt hashes.
package password
