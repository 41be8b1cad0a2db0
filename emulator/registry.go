package emulator

import (
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// Token is a session's stable handle, carried by the VM engine's
// surrounding script container so a VM handle can reach its owning
// emulator without the emulator and the VM engine holding direct
// pointers to each other (spec.md §9: "give each session a stable
// handle (integer token) and keep a weak registry token → emulator;
// transactions carry the token, not a direct back-pointer").
//
// Grounded on core/rawdb-style bounded LRU caches elsewhere in the
// teacher's stack; here the cache bounds how many concurrently
// recoverable sessions the process retains, evicting the least recently
// registered or looked-up session when full rather than growing without
// limit.
type Token string

// registrySize bounds how many sessions' tokens the process-wide
// registry retains at once.
const registrySize = 256

var (
	registryOnce sync.Once
	registry     *lru.Cache
)

func sessionRegistry() *lru.Cache {
	registryOnce.Do(func() {
		c, err := lru.New(registrySize)
		if err != nil {
			panic(err)
		}
		registry = c
	})
	return registry
}

// newToken mints a fresh session token and registers e under it,
// returning the token for the session's script container to carry.
func newToken(e *Emulator) Token {
	tok := Token(uuid.New().String())
	sessionRegistry().Add(tok, e)
	return tok
}

// lookupEmulator resolves a token back to its owning Emulator, if the
// session is still registered. This is the reverse-navigation primitive
// spec.md §4.7's closing paragraph and §9's cyclic-ownership note
// describe: "given a VM engine handle, the emulator it belongs to is
// reachable via the script container."
func lookupEmulator(tok Token) (*Emulator, bool) {
	v, ok := sessionRegistry().Get(tok)
	if !ok {
		return nil, false
	}
	e, ok := v.(*Emulator)
	return e, ok
}

// forget removes a session's token from the registry, e.g. when the
// Emulator itself is discarded.
func forget(tok Token) {
	sessionRegistry().Remove(tok)
}
