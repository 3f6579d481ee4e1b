package cache

import (
	"github.com/bijoor/konkan-house/pkg/dimension"
)

// RenderKey builds the cache key for one rendered floor. The key
// covers everything that changes the output: the plan file's content
// hash, the floor number, the output format and scale, and the full
// dimension configuration.
func RenderKey(planHash string, floor int, format string, scale float64, cfg dimension.Config) string {
	return hashKey("render", planHash, floor, format, scale, cfg)
}
