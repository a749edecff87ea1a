// Package cache provides the small generic LRU cache retained uses for
// memoizing parsed paint values.
//
//	c := cache.New[string, paint.Color](256)
//	c.Set("red", paint.Red)
//	v, ok := c.Get("red")
package cache
