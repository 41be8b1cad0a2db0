package emulator

import (
	"github.com/VictoriaMetrics/fastcache"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/snappy"
)

// Account identifies the executing contract: its script hash and its
// compiled bytecode (spec.md §3: "contract_bytecode... set once per
// target account").
type Account struct {
	ScriptHash common.Address
	Bytecode   []byte
}

// bytecodeCacheBytes bounds the in-memory snappy-compressed bytecode
// cache. Sized for a debugger session juggling a handful of contracts
// at once, not a full-node's working set.
const bytecodeCacheBytes = 16 * 1024 * 1024

// bytecodeCache holds compiled contract bytecode compressed with
// snappy, keyed by script hash. Each Emulator owns its own cache.
// SetExecutingAccount compresses and stores the bytecode on every call,
// including for a contract already cached; Reset reads the bytecode
// back from the cache and falls back to the bound account's bytes on a
// miss.
//
// Grounded on the teacher's dependency on VictoriaMetrics/fastcache for
// its own in-memory byte caches (trie/rawdb layers this module dropped,
// per DESIGN.md) paired with the golang/snappy compression the teacher
// also pulls in; both land here instead, now caching compiled NeoVM
// bytecode rather than trie nodes.
type bytecodeCache struct {
	cache *fastcache.Cache
}

func newBytecodeCache() *bytecodeCache {
	return &bytecodeCache{cache: fastcache.New(bytecodeCacheBytes)}
}

func (c *bytecodeCache) put(scriptHash common.Address, bytecode []byte) {
	compressed := snappy.Encode(nil, bytecode)
	c.cache.Set(scriptHash[:], compressed)
}

func (c *bytecodeCache) get(scriptHash common.Address) ([]byte, bool) {
	compressed := c.cache.Get(nil, scriptHash[:])
	if compressed == nil {
		return nil, false
	}
	bytecode, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, false
	}
	return bytecode, true
}
