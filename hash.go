package chash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashFunc maps a key to an unsigned integer. It must be deterministic;
// the table reduces the result modulo its current capacity.
type HashFunc func(key string) uint64

// XXHash hashes the key with 64-bit xxHash. It is the default hasher.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes a 32-bit FNV-1a hash of the key
func FNV1a(key string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return uint64(hash)
}

// murmurSeed is the fixed seed for Murmur3.
const murmurSeed uint32 = 0x000031FF

// Murmur3 hashes the key with 32-bit MurmurHash3 using a fixed seed.
func Murmur3(key string) uint64 {
	return uint64(murmur3.Sum32WithSeed([]byte(key), murmurSeed))
}
