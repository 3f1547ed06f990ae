package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
)

// JWKSource resolves signing keys from a JWK set. The remote variant keeps
// the set fresh in the background and refetches on an unknown kid.
type JWKSource struct {
	set keyfunc.Keyfunc
}

// NewRemoteJWKSource fetches the JWK set at url. Background refreshes stop
// when ctx is cancelled.
func NewRemoteJWKSource(ctx context.Context, url string) (*JWKSource, error) {
	set, err := keyfunc.NewDefaultCtx(ctx, []string{url})
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys from %s: %w", url, err)
	}
	return &JWKSource{set: set}, nil
}

// NewJWKSourceJSON serves keys from a JWK set document.
func NewJWKSourceJSON(raw json.RawMessage) (*JWKSource, error) {
	set, err := keyfunc.NewJWKSetJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing keys: %w", err)
	}
	return &JWKSource{set: set}, nil
}

func (s *JWKSource) PublicKey(ctx context.Context, kid string) (any, error) {
	jwk, err := s.set.Storage().KeyRead(ctx, kid)
	if err != nil {
		if errors.Is(err, jwkset.ErrKeyNotFound) {
			return nil, ErrUnknownKey
		}
		return nil, fmt.Errorf("failed to read signing key %s: %w", kid, err)
	}
	return jwk.Key(), nil
}

// StaticKeySource serves a fixed set of keys.
type StaticKeySource map[string]any

func (s StaticKeySource) PublicKey(_ context.Context, kid string) (any, error) {
	if key, ok := s[kid]; ok {
		return key, nil
	}
	return nil, ErrUnknownKey
}
