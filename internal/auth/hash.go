package auth

import (
	"crypto/md5"
	"encoding/hex"
)

// HashPassword returns the lowercase hex MD5 digest the device expects in the
// "pass" parameter of method=login.
// MD5 is fixed by the device firmware, it is not a choice made here.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
