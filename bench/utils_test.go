package chash_test

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"runtime"
	"testing"

	"github.com/theflywheel/chash"
)

// generateUUID creates a random 16-byte UUID
func generateUUID() []byte {
	uuid := make([]byte, 16)
	if _, err := rand.Read(uuid); err != nil {
		panic(err)
	}
	// Set version (4) and variant (RFC4122)
	uuid[6] = (uuid[6] & 0x0F) | 0x40
	uuid[8] = (uuid[8] & 0x3F) | 0x80
	return uuid
}

// generateAlphanumeric creates a random alphanumeric string of given length
func generateAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err)
		}
		result[i] = charset[n.Int64()]
	}
	return string(result)
}

// getMemoryUsage returns the current heap allocation as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// reportChainStats attaches the table's bucket distribution to the benchmark
func reportChainStats[V any](b *testing.B, tbl *chash.Table[V]) {
	s := tbl.Stats()
	b.ReportMetric(float64(s.Capacity), "buckets")
	b.ReportMetric(s.LoadFactor, "load_factor")
	b.ReportMetric(float64(s.LongestChain), "longest_chain")
	if s.UsedBuckets > 0 {
		b.ReportMetric(float64(s.Size)/float64(s.UsedBuckets), "avg_chain")
	}
}

var hashers = []struct {
	name string
	fn   chash.HashFunc
}{
	{"XXHash", chash.XXHash},
	{"FNV1a", chash.FNV1a},
	{"Murmur3", chash.Murmur3},
}
