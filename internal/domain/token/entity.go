package token

import "time"

// Token is a short-lived scan credential. One token backs one displayed QR
// and may be used by any number of employees while the validity window is
// open; the sweeper marks it used once it expires.
type Token struct {
	ID        string
	Value     string
	Area      string
	ExpiresAt time.Time
	Used      bool
	Disabled  bool
	CreatedAt time.Time
}

// Expired reports whether the token is past its validity window at now.
func (t Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
