package models

import "time"

// Token is a signed bearer token together with the values extracted from its
// claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the value of the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
