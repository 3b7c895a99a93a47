package utils

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"strings"
)

// Fingerprint builds a cache key from the given parts, lower-cased and
// trimmed so that requests differing only in case or whitespace collide.
func Fingerprint(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(p)))
	}
	return strings.Join(normalized, "::")
}

// PlanCacheKey derives the persisted-cache key for a full generated plan.
func PlanCacheKey(destination string, days int, mood string) string {
	key := Fingerprint(destination) + "_" + strconv.Itoa(days) + "_" + Fingerprint(mood)
	return fmt.Sprintf("%x", md5.Sum([]byte(key)))
}
