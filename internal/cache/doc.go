// Package cache provides a small generic LRU cache with a soft limit.
//
//	kernels := cache.New[int, []float32](64)
//	k := kernels.GetOrCreate(120, func() []float32 { return build(1.2) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
