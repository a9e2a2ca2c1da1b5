package jwtx

import (
	"errors"
	"sync"
)

var ErrNoKey = errors.New("jwtx: key not found")

// KeySet holds the issuer's public verification keys. It is safe for
// concurrent use: the JWKS refresher swaps keys while requests verify.
type KeySet struct {
	mu  sync.RWMutex
	jks JWKS
	pub map[string]any
}

// NewKeySet returns an empty KeySet.
func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]any)}
}

// AddJWK parses j and adds it, replacing any key with the same kid.
func (k *KeySet) AddJWK(j JWK) error {
	key, err := j.PublicKey()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.pub[j.Kid]; exists {
		keys := k.jks.Keys[:0]
		for _, old := range k.jks.Keys {
			if old.Kid != j.Kid {
				keys = append(keys, old)
			}
		}
		k.jks.Keys = keys
	}
	k.pub[j.Kid] = key
	k.jks.Keys = append(k.jks.Keys, j)
	return nil
}

// Get returns the key for kid along with the algorithm it was published for.
func (k *KeySet) Get(kid string) (any, string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	key, ok := k.pub[kid]
	if !ok {
		return nil, "", ErrNoKey
	}
	for _, j := range k.jks.Keys {
		if j.Kid == kid {
			return key, j.Alg, nil
		}
	}
	return key, "", nil
}

// JWKS returns a copy of the keys currently loaded.
func (k *KeySet) JWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := JWKS{Keys: make([]JWK, len(k.jks.Keys))}
	copy(out.Keys, k.jks.Keys)
	return out
}

// IsReady reports whether at least one key is loaded.
func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub) > 0
}

// Replace swaps the whole set atomically. A set that fails to parse leaves
// the current keys untouched.
func (k *KeySet) Replace(jwks JWKS) error {
	next := make(map[string]any, len(jwks.Keys))
	for _, j := range jwks.Keys {
		key, err := j.PublicKey()
		if err != nil {
			return err
		}
		next[j.Kid] = key
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.pub = next
	k.jks = JWKS{Keys: append([]JWK(nil), jwks.Keys...)}
	return nil
}
