package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. Handler
// responses are cached in their serialized form so a hit skips both the
// forecast run and the JSON encode.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
