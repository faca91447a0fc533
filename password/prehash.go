package password

import (
	"crypto/sha256"
	"encoding/base64"
)

// PreHash collapses password into a 44-character base64 SHA-256 digest.
//
// bcrypt only reads the first 72 bytes of its input; the digest keeps every
// byte of the original password significant and gives the slow stage a
// fixed-size input regardless of password length.
func PreHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
