package db

import "errors"

// ErrKeyNotFound is returned by Get when the key does not exist, regardless
// of which client implementation is in use.
var ErrKeyNotFound = errors.New("key not found")

// RedisClient defines the key-value operations the snapshot store needs.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	Ping() error
}
