package infrastructure

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL returns the 200px, pg rated avatar for email, falling back
// to the mystery-man image.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
