package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const firebaseIssuerPrefix = "https://securetoken.google.com/"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownKey   = errors.New("unknown signing key")
)

// Verifier validates a bearer token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (jwt.MapClaims, error)
}

// KeySource resolves the RSA public key a token was signed with.
type KeySource interface {
	PublicKey(ctx context.Context, kid string) (any, error)
}

// FirebaseVerifier checks Firebase ID tokens: RS256 signature against
// Google's published signing keys, issuer, audience and expiry.
type FirebaseVerifier struct {
	projectID string
	keys      KeySource
	leeway    time.Duration
}

// NewFirebaseVerifier creates a verifier for the given Firebase project.
func NewFirebaseVerifier(projectID string, keys KeySource) *FirebaseVerifier {
	return &FirebaseVerifier{
		projectID: projectID,
		keys:      keys,
		leeway:    30 * time.Second,
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKey
		}
		return v.keys.PublicKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(firebaseIssuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if sub, _ := claims.GetSubject(); sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

// HMACVerifier accepts HS256 tokens signed with a shared secret. It stands
// in for Firebase in local development and tests.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier for the given shared secret.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) Verify(_ context.Context, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SignHMAC issues an HS256 token carrying claims. Used by development
// tooling and tests.
func SignHMAC(secret string, claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
