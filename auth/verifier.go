package auth

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Identity is the authenticated caller of the current request. Write
// operations take the owner id from here, never from the request body.
type Identity struct {
	UserID string
	Email  string
}

// Verifier resolves session tokens to identities, caching successful
// verifications briefly so hot sessions skip repeated signature checks.
type Verifier struct {
	tokens *TokenManager
	cache  *cache.Cache
}

func NewVerifier(tokens *TokenManager) *Verifier {
	return &Verifier{
		tokens: tokens,
		cache:  cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (v *Verifier) Identify(token string) (Identity, error) {
	cached, found := v.cache.Get(token)

	if found {
		return cached.(Identity), nil
	}

	claims, err := v.tokens.Verify(token)

	if err != nil {
		return Identity{}, err
	}

	identity := Identity{UserID: claims.UserID, Email: claims.Email}
	v.cache.Set(token, identity, cache.DefaultExpiration)

	return identity, nil
}
