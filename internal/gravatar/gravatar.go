// Package gravatar builds Gravatar avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"net/url"
	"strings"
)

// URL returns the Gravatar URL for the given email, sized to size pixels,
// rated pg, with the "mystery man" fallback for addresses without an avatar.
func URL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))

	query := url.Values{}
	query.Set("s", fmt.Sprintf("%d", size))
	query.Set("r", "pg")
	query.Set("d", "mm")

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?%s", hash, query.Encode())
}
