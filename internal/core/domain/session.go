package domain

import "time"

// Session is a signed bearer credential bound to a single user. Only the
// token and its expiry are serialized; the subject travels inside the signed
// claims, never as the token itself.
type Session struct {
	Token     string    `json:"token"`
	Subject   string    `json:"-"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
