// Package gravatar derives deterministic avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar"

// URL returns the gravatar URL for an email: 200px, PG-rated, with the
// "mystery man" fallback image. The hash is over the trimmed,
// lowercased address, so the same email always maps to the same URL.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%s?s=200&r=pg&d=mm", baseURL, hex.EncodeToString(sum[:]))
}
