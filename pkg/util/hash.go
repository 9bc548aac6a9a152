package util

import (
	"hash/fnv"
)

// HashString returns the FNV-1a hash of s. Cache keys are stored under the
// hex form so arbitrary query strings never leak into redis key names.
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
