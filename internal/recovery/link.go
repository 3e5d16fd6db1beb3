// Package recovery implements the signed recovery-link capability token.
//
// A link is valid only for the exact (id, email, created_at) the record had
// when the link was issued; any later update to the record, including a
// refreshed capture, invalidates outstanding links.
package recovery

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Query parameters carried by a recovery link.
const (
	ParamMarker = "scr_recover"
	ParamCartID = "scr_cart"
	ParamKey    = "scr_key"
)

// timeLayout pins created_at to second precision so the stored timestamp and
// the signed timestamp cannot drift apart.
const timeLayout = "2006-01-02 15:04:05"

// Signer issues and verifies recovery-link signatures.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer keyed with the server-side secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex-encoded HMAC-SHA256 signature for a cart record.
func (s *Signer) Sign(id int64, email string, createdAt time.Time) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s|%s", id, email, createdAt.UTC().Format(timeLayout))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether key is the valid signature for a cart record.
// The comparison is constant-time.
func (s *Signer) Verify(id int64, email string, createdAt time.Time, key string) bool {
	expected := s.Sign(id, email, createdAt)
	return hmac.Equal([]byte(expected), []byte(key))
}

// URL builds the recovery link for a cart record on top of the checkout URL.
func (s *Signer) URL(checkoutURL string, id int64, email string, createdAt time.Time) (string, error) {
	u, err := url.Parse(checkoutURL)
	if err != nil {
		return "", fmt.Errorf("parse checkout url: %w", err)
	}

	q := u.Query()
	q.Set(ParamMarker, "1")
	q.Set(ParamCartID, strconv.FormatInt(id, 10))
	q.Set(ParamKey, s.Sign(id, email, createdAt))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
