package calculus

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
)

// Memoize wraps fx with a concurrency safe cache of its values. Entries
// expire after ttl. fx must be pure for the result to be equivalent.
func Memoize(fx Func, ttl time.Duration) Func {
	if ttl <= 0 {
		return fx
	}

	c := cache.New(ttl, ttl*2)

	return func(x float64) float64 {
		key := cast.ToString(x)

		if v, ok := c.Get(key); ok {
			if y, ok := v.(float64); ok {
				return y
			}
		}

		y := fx(x)
		c.SetDefault(key, y)

		return y
	}
}
