// Package auth resolves the calling user from verified token claims.
package auth

import "strings"

// Claim names consulted when resolving the caller.
const (
	ClaimUserID         = "user_id"
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimSubject        = "sub"
	ClaimName           = "name"
	ClaimNameLegacy     = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	ClaimEmail          = "email"
)

var uidClaims = []string{ClaimUserID, ClaimNameIdentifier, ClaimSubject}

// Identity is the caller as described by its token.
type Identity struct {
	UID   string
	Name  string
	Email string
}

// ExtractUID returns the first non-empty value among user_id, the
// name-identifier claim and sub.
func ExtractUID(claims map[string]any) (string, bool) {
	uid := firstString(claims, uidClaims...)
	return uid, uid != ""
}

// IdentityFromClaims builds the caller identity. ok is false when no UID
// claim is present.
func IdentityFromClaims(claims map[string]any) (Identity, bool) {
	uid, ok := ExtractUID(claims)
	if !ok {
		return Identity{}, false
	}

	return Identity{
		UID:   uid,
		Name:  firstString(claims, ClaimName, ClaimNameLegacy),
		Email: firstString(claims, ClaimEmail),
	}, true
}

func firstString(claims map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
